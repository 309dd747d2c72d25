//go:build !cgo && unix

package api

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/nocuda/cudashim/types"
)

// This file provides a pure-Go backend for builds where cgo is disabled,
// keeping the Go-level API functional. The C ABI surface (the exported
// cudaMallocHost/cudaFreeHost symbols) exists only in cgo builds.

// mappings tracks the length of every live allocation. Munmap needs the
// mapping length back, which the C allocator path gets for free from the
// malloc bookkeeping.
var (
	mappingsMu sync.Mutex
	mappings   = map[uintptr][]byte{}
)

// AllocHost requests a block of at least size bytes, aligned to
// HostAlignment. Anonymous mappings are page-granular, so the alignment
// holds by construction. Unlike the cgo backend, a zero size rounds up to
// one page: a zero-length mapping is invalid, and callers are promised a
// Success/Failure answer, not an EINVAL.
func AllocHost(size uintptr) (unsafe.Pointer, types.Status) {
	n := size
	if n == 0 {
		n = HostAlignment
	}
	b, err := unix.Mmap(-1, 0, int(n), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, types.StatusErrorMemoryAllocation
	}
	ptr := unsafe.Pointer(&b[0])
	mappingsMu.Lock()
	mappings[uintptr(ptr)] = b
	mappingsMu.Unlock()
	return ptr, types.StatusSuccess
}

// FreeHost releases a block obtained from AllocHost. nil and pointers with
// no recorded mapping are no-ops, keeping the two backends behaviorally
// aligned. There is no failure outcome to surface.
func FreeHost(ptr unsafe.Pointer) types.Status {
	if ptr == nil {
		return types.StatusSuccess
	}
	mappingsMu.Lock()
	b, ok := mappings[uintptr(ptr)]
	if ok {
		delete(mappings, uintptr(ptr))
	}
	mappingsMu.Unlock()
	if ok {
		_ = unix.Munmap(b)
	}
	return types.StatusSuccess
}

// liveHostAllocations reports the number of outstanding allocations.
func liveHostAllocations() int {
	mappingsMu.Lock()
	defer mappingsMu.Unlock()
	return len(mappings)
}
