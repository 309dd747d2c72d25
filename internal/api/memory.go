//go:build cgo && unix

package api

/*
#include <stdlib.h>
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"github.com/nocuda/cudashim/types"
)

// Value types
type cint = C.int
type cusize = C.size_t

// AllocHost requests a block of at least size bytes from the system
// allocator, aligned to HostAlignment. A single attempt is made; on failure
// the returned pointer is nil. A zero size is forwarded as-is, so the result
// follows the platform's posix_memalign(3) contract (glibc returns either
// NULL or a unique freeable pointer).
func AllocHost(size uintptr) (unsafe.Pointer, types.Status) {
	var ptr unsafe.Pointer
	if C.posix_memalign(&ptr, cusize(HostAlignment), cusize(size)) != 0 {
		return nil, types.StatusErrorMemoryAllocation
	}
	return ptr, types.StatusSuccess
}

// FreeHost returns a block obtained from AllocHost to the system allocator.
// nil is a no-op per free(3). Passing a pointer that did not come from
// AllocHost, or freeing twice, is undefined behavior; no bookkeeping guards
// against it. There is no failure outcome to surface.
func FreeHost(ptr unsafe.Pointer) types.Status {
	C.free(ptr)
	return types.StatusSuccess
}
