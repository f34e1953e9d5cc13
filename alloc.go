package vector

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync/atomic"
	"unsafe"
)

// AllocationFailureCode is the process exit code used after a failed allocation.
const AllocationFailureCode = 2

const elementSize = unsafe.Sizeof(Element(0))

// maxElements is the largest buffer the runtime can describe for Element.
const maxElements = math.MaxInt / int(elementSize)

var (
	defaultLogger = log.New(os.Stderr, "vector: ", log.LstdFlags)
	defaultAbort  = os.Exit

	// generations hands out buffer identities, it is shared by every vector.
	generations atomic.Uint64
)

func nextGeneration() uint64 {
	return generations.Add(1)
}

func (v *Vector) failureLogger() *log.Logger {
	if v.logger == nil {
		return defaultLogger
	}
	return v.logger
}

func (v *Vector) failureAbort() func(code int) {
	if v.abort == nil {
		return defaultAbort
	}
	return v.abort
}

// allocate returns a zeroed buffer for n elements. Any failure is fatal:
// it is reported on the vector logger and the process is aborted.
// Exhausting the heap is a runtime fatal error and never reaches this code.
func (v *Vector) allocate(n int) (buffer []Element) {
	if n == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			v.allocationFailed(n, r)
		}
	}()
	if n < 0 || n > maxElements {
		panic(fmt.Errorf("%w: %d elements", ErrCapacityOverflow, n))
	}
	return make([]Element, n)
}

func (v *Vector) allocationFailed(n int, cause interface{}) {
	v.failureLogger().Printf("failed to allocate %d elements: %v", n, cause)
	v.failureAbort()(AllocationFailureCode)
	// abort is expected to never return
	panic(fmt.Errorf("%w: %d elements: %v", ErrAllocation, n, cause))
}
