package types

import (
	"errors"
	"fmt"
)

// Status mirrors the subset of the CUDA runtime status enumeration this
// library can produce. The numeric values are part of the ABI contract and
// must not change.
type Status uint32

const (
	// StatusSuccess reports a completed operation.
	StatusSuccess Status = 0
	// StatusErrorMemoryAllocation reports that the underlying allocator
	// could not satisfy an allocation request.
	StatusErrorMemoryAllocation Status = 2
)

// ErrMemoryAllocation is the Go-level error corresponding to
// StatusErrorMemoryAllocation.
var ErrMemoryAllocation = errors.New("cudashim: host memory allocation failed")

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "cudaSuccess"
	case StatusErrorMemoryAllocation:
		return "cudaErrorMemoryAllocation"
	default:
		return fmt.Sprintf("unknown status (%d)", uint32(s))
	}
}

// Err converts the status into an error, nil for StatusSuccess.
func (s Status) Err() error {
	switch s {
	case StatusSuccess:
		return nil
	case StatusErrorMemoryAllocation:
		return ErrMemoryAllocation
	default:
		return fmt.Errorf("cudashim: unexpected status %s", s)
	}
}
