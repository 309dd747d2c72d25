// Package cudashim is a drop-in fallback for the CUDA runtime's pinned
// host-memory allocation pair. Built with -buildmode=c-shared it exports
// cudaMallocHost and cudaFreeHost under their unmangled C names, so a
// dynamic loader substitutes this implementation for the vendor one on
// machines without the runtime (or the GPU). The fallback hands out
// page-aligned ordinary heap memory: ABI-compatible at the call site, but
// without the DMA benefits of true page-locked memory.
//
// This file is the Go-level facade over the same allocator, for Go callers
// that want the fallback without going through the C surface.
package cudashim

import (
	"unsafe"

	"github.com/nocuda/cudashim/internal/api"
	"github.com/nocuda/cudashim/types"
)

// Status mirrors the subset of the vendor status enumeration this library
// can produce.
type Status = types.Status

// HostAlignment is the alignment boundary, in bytes, of every pointer
// returned by AllocHost.
const HostAlignment = api.HostAlignment

// AllocHost allocates at least size bytes of host memory aligned to
// HostAlignment. The caller owns the block and must release it exactly once
// with FreeHost. A single allocation attempt is made; failures are never
// retried.
func AllocHost(size uintptr) (unsafe.Pointer, error) {
	ptr, status := api.AllocHost(size)
	if err := status.Err(); err != nil {
		return nil, err
	}
	return ptr, nil
}

// AllocHostBytes is AllocHost with the block surfaced as a byte slice.
//
// The slice is backed by memory outside the Go heap: it must not be
// appended to, and it must be released with FreeHostBytes, not left to the
// garbage collector.
func AllocHostBytes(size int) ([]byte, error) {
	ptr, status := api.AllocHost(uintptr(size))
	if err := status.Err(); err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(ptr), size), nil
}

// FreeHost releases a block obtained from AllocHost. Freeing nil is a
// no-op. Freeing a foreign pointer, or freeing twice, is undefined
// behavior, exactly as with the vendor pair.
func FreeHost(ptr unsafe.Pointer) error {
	return api.FreeHost(ptr).Err()
}

// FreeHostBytes releases a slice obtained from AllocHostBytes. nil and
// empty slices are no-ops.
func FreeHostBytes(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return api.FreeHost(unsafe.Pointer(&b[0])).Err()
}

// Version returns the version of this library.
func Version() (string, error) {
	return api.ShimVersion()
}
