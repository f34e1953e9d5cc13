package vector

import "errors"

var (
	//ErrOutOfRange reports an index outside of [0, Size())
	ErrOutOfRange = errors.New("index out of range")
	//ErrNilIterator reports use of a default constructed iterator
	ErrNilIterator = errors.New("nil iterator")
	//ErrInvalidated reports an iterator whose vector buffer was reallocated, swapped or released
	ErrInvalidated = errors.New("iterator invalidated")
	//ErrCapacityOverflow reports a requested capacity the runtime cannot represent
	ErrCapacityOverflow = errors.New("capacity overflow")
	//ErrInvalidElement reports a decoded value that is not an integral Element
	ErrInvalidElement = errors.New("invalid element")
	//ErrAllocation reports an allocation failure when the abort function returned
	ErrAllocation = errors.New("allocation failed")
)
