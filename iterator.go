package vector

import (
	"cmp"
	"fmt"
	"unsafe"
)

// Iterator is a random access cursor over a vector buffer.
//
// It holds a non owning reference to the vector and an element offset. Growing,
// swapping or releasing the vector leaves the iterator dangling; the default
// accessors do not detect that, Valid and Checked do.
// The zero value is a nil iterator.
type Iterator struct {
	owner      *Vector
	index      int
	generation uint64
}

func newIterator(owner *Vector, index int) Iterator {
	return Iterator{owner: owner, index: index, generation: owner.generation}
}

// Begin returns an iterator positioned at the first element
func (v *Vector) Begin() Iterator {
	return newIterator(v, 0)
}

// End returns an iterator positioned one past the last element
func (v *Vector) End() Iterator {
	return newIterator(v, v.size)
}

// Deref returns a reference to the current element
func (it Iterator) Deref() *Element {
	return &it.owner.buffer[it.index]
}

// Value returns the current element
func (it Iterator) Value() Element {
	return it.owner.buffer[it.index]
}

// Set writes the current element
func (it Iterator) Set(value Element) {
	it.owner.buffer[it.index] = value
}

// Pointer returns the current element address
func (it Iterator) Pointer() unsafe.Pointer {
	return unsafe.Pointer(it.Deref())
}

// Index returns the element offset
func (it Iterator) Index() int {
	return it.index
}

// Assign rebinds it to the position of other
func (it *Iterator) Assign(other Iterator) {
	*it = other
}

// Increment moves to the next element
func (it *Iterator) Increment() *Iterator {
	it.index++
	return it
}

// PostIncrement moves to the next element and returns the prior position
func (it *Iterator) PostIncrement() Iterator {
	prev := *it
	it.index++
	return prev
}

// Decrement moves to the previous element
func (it *Iterator) Decrement() *Iterator {
	it.index--
	return it
}

// PostDecrement moves to the previous element and returns the prior position
func (it *Iterator) PostDecrement() Iterator {
	prev := *it
	it.index--
	return prev
}

// AddAssign shifts in place by n elements, n may be negative
func (it *Iterator) AddAssign(n int) *Iterator {
	it.index += n
	return it
}

// SubAssign shifts in place by -n elements
func (it *Iterator) SubAssign(n int) *Iterator {
	it.index -= n
	return it
}

// Add returns an iterator shifted by n elements, n may be negative
func (it Iterator) Add(n int) Iterator {
	it.index += n
	return it
}

// Sub returns an iterator shifted by -n elements
func (it Iterator) Sub(n int) Iterator {
	it.index -= n
	return it
}

// Distance returns the signed number of elements from other to it;
// both iterators have to come from the same vector.
func (it Iterator) Distance(other Iterator) int {
	return it.index - other.index
}

// Equal returns true if both iterators reference the same position
func (it Iterator) Equal(other Iterator) bool {
	return it.owner == other.owner && it.index == other.index
}

// Compare orders iterators by position, it is meaningful for iterators of the same vector only
func (it Iterator) Compare(other Iterator) int {
	return cmp.Compare(it.index, other.index)
}

// Less returns true if it is positioned before other
func (it Iterator) Less(other Iterator) bool {
	return it.index < other.index
}

// IsNil returns true for a default constructed iterator
func (it Iterator) IsNil() bool {
	return it.owner == nil
}

// Valid returns true if the iterator is bound to the current vector buffer and positioned on an element
func (it Iterator) Valid() bool {
	_, err := it.Checked()
	return err == nil
}

// Checked returns a reference to the current element, or an error describing why the iterator cannot be dereferenced
func (it Iterator) Checked() (*Element, error) {
	switch {
	case it.owner == nil:
		return nil, ErrNilIterator
	case it.generation != it.owner.generation:
		return nil, ErrInvalidated
	case it.index < 0 || it.index >= it.owner.size:
		return nil, fmt.Errorf("%w: iterator index %d, size %d", ErrOutOfRange, it.index, it.owner.size)
	}
	return &it.owner.buffer[it.index], nil
}
