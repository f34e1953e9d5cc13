// Package vector implements a resizable array of numeric elements with
// random access iterators, amortized doubling growth and abort on allocation failure.
package vector

import (
	"fmt"
	"iter"
	"log"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Element is the value type stored by Vector
type Element = int

type (
	// Vector is a resizable array owning a contiguous buffer of Element values.
	//
	// Index based accessors (At, Get, Set) and PopBack do not check their
	// preconditions against Size: callers are responsible for passing a valid
	// index and for popping only a non empty vector. CheckedAt and
	// Iterator.Checked are the checked alternatives.
	//
	// A Vector is not safe for concurrent use. The zero value is an empty vector.
	Vector struct {
		buffer        []Element
		size          int
		capacity      int
		generation    uint64
		reallocations int
		logger        *log.Logger
		abort         func(code int)

		// reserved by New once failure handling options are set
		initialCapacity int
	}
)

// New creates an empty vector, no buffer is allocated unless WithCapacity is used
func New(opts ...Option) *Vector {
	ret := &Vector{}
	Options(opts).Apply(ret)
	if ret.initialCapacity > 0 {
		ret.Reserve(ret.initialCapacity)
		ret.initialCapacity = 0
	}
	return ret
}

// NewSize creates a vector holding n zero elements, with capacity n
func NewSize(n int, opts ...Option) *Vector {
	ret := New(opts...)
	if n < 0 {
		ret.allocationFailed(n, ErrCapacityOverflow)
	}
	ret.Reserve(n)
	ret.size = n
	return ret
}

// Of creates a vector holding values in the listed order, with capacity len(values)
func Of(values ...Element) *Vector {
	ret := &Vector{}
	ret.Reserve(len(values))
	ret.size = copy(ret.buffer, values)
	return ret
}

// Clone returns a deep copy with the same size, capacity and failure handling
func (v *Vector) Clone() *Vector {
	ret := &Vector{logger: v.logger, abort: v.abort}
	ret.copyFrom(v)
	return ret
}

// Assign replaces v content with a deep copy of src. Assigning a vector to itself is a no-op.
func (v *Vector) Assign(src *Vector) {
	if v == src {
		return
	}
	v.Release()
	v.copyFrom(src)
}

func (v *Vector) copyFrom(src *Vector) {
	v.buffer = v.allocate(src.capacity)
	copy(v.buffer, src.buffer[:src.size])
	v.size = src.size
	v.capacity = src.capacity
	v.generation = nextGeneration()
}

// Release drops the buffer, leaving an empty vector; all iterators become invalid
func (v *Vector) Release() {
	v.buffer = nil
	v.size = 0
	v.capacity = 0
	v.generation = nextGeneration()
}

// Size returns number of elements
func (v *Vector) Size() int {
	return v.size
}

// Capacity returns number of allocated element slots
func (v *Vector) Capacity() int {
	return v.capacity
}

// Data returns the address of the first element.
// It requires Capacity() > 0; for an unallocated vector it returns nil, which must not be dereferenced.
func (v *Vector) Data() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(v.buffer))
}

// At returns a reference to the element at index, index is not checked against Size
func (v *Vector) At(index int) *Element {
	return &v.buffer[index]
}

// Get returns the element at index, index is not checked against Size
func (v *Vector) Get(index int) Element {
	return v.buffer[index]
}

// Set sets the element at index, index is not checked against Size
func (v *Vector) Set(index int, value Element) {
	v.buffer[index] = value
}

// UnsafeAt returns a reference computed with pointer arithmetic over the buffer, no check of any kind is performed
func (v *Vector) UnsafeAt(index int) *Element {
	return xunsafe.AsIntPtr(unsafe.Add(v.Data(), uintptr(index)*elementSize))
}

// CheckedAt returns a reference to the element at index or ErrOutOfRange
func (v *Vector) CheckedAt(index int) (*Element, error) {
	if index < 0 || index >= v.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, v.size)
	}
	return &v.buffer[index], nil
}

// Reserve grows the buffer to exactly capacity slots, preserving elements; it is a no-op when capacity <= Capacity()
func (v *Vector) Reserve(capacity int) {
	if capacity <= v.capacity {
		return
	}
	buffer := v.allocate(capacity)
	copy(buffer, v.buffer[:v.size])
	v.buffer = buffer
	v.capacity = capacity
	v.generation = nextGeneration()
	v.reallocations++
}

// Clear sets size to zero, the buffer is kept as is
func (v *Vector) Clear() {
	v.size = 0
}

// PushBack appends value, doubling capacity when full
func (v *Vector) PushBack(value Element) {
	if v.size+1 > v.capacity {
		if v.capacity == 0 {
			v.Reserve(1)
		} else {
			v.Reserve(2 * v.capacity)
		}
	}
	v.buffer[v.size] = value
	v.size++
}

// PopBack removes the last element, the vector must not be empty
func (v *Vector) PopBack() {
	v.size--
}

// Swap exchanges buffers, sizes and capacities of v and other without copying elements
func (v *Vector) Swap(other *Vector) {
	v.buffer, other.buffer = other.buffer, v.buffer
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.generation, other.generation = other.generation, v.generation
}

// Values returns elements as a slice sharing the vector buffer
func (v *Vector) Values() []Element {
	return v.buffer[:v.size:v.size]
}

// All returns an index, element sequence in index order
func (v *Vector) All() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buffer[i]) {
				return
			}
		}
	}
}

// Backward returns an index, element sequence in reverse index order
func (v *Vector) Backward() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buffer[i]) {
				return
			}
		}
	}
}

// Reallocations returns number of buffer reallocations performed by Reserve or PushBack
func (v *Vector) Reallocations() int {
	return v.reallocations
}

func (v *Vector) String() string {
	return fmt.Sprint(v.Values())
}
