package visitor

import (
	"fmt"

	"github.com/viant/vector"
)

// VectorVisitor implements Visitor[int, vector.Element] over an iterator range
type VectorVisitor struct {
	begin   vector.Iterator
	end     vector.Iterator
	reverse bool
}

// Of creates a Visitor walking v from the first to the last element, keyed by element index
func Of(v *vector.Vector) Visitor[int, vector.Element] {
	visitor := &VectorVisitor{begin: v.Begin(), end: v.End()}
	return visitor.Visit
}

// Reverse creates a Visitor walking v from the last to the first element
func Reverse(v *vector.Vector) Visitor[int, vector.Element] {
	visitor := &VectorVisitor{begin: v.Begin(), end: v.End(), reverse: true}
	return visitor.Visit
}

// Range creates a Visitor walking [begin, end), both iterators have to come from the same vector
func Range(begin, end vector.Iterator) (Visitor[int, vector.Element], error) {
	if begin.IsNil() || end.IsNil() {
		return nil, fmt.Errorf("expected bound iterators: %w", vector.ErrNilIterator)
	}
	if end.Less(begin) {
		return nil, fmt.Errorf("invalid range: begin %d after end %d", begin.Index(), end.Index())
	}
	visitor := &VectorVisitor{begin: begin, end: end}
	return visitor.Visit, nil
}

// Visit iterates over the range, calling the provided function for each element.
// The key is the element index.
func (v *VectorVisitor) Visit(f func(key int, element vector.Element) (bool, error)) error {
	if v.reverse {
		for it := v.end; v.begin.Less(it); {
			it.Decrement()
			continueVisit, err := f(it.Index(), it.Value())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
	for it := v.begin; it.Less(v.end); it.Increment() {
		continueVisit, err := f(it.Index(), it.Value())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// RefsOf creates a Visitor passing element references, so the callback can update elements in place
func RefsOf(v *vector.Vector) Visitor[int, *vector.Element] {
	return func(f func(key int, element *vector.Element) (bool, error)) error {
		for it, end := v.Begin(), v.End(); it.Less(end); it.Increment() {
			continueVisit, err := f(it.Index(), it.Deref())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
