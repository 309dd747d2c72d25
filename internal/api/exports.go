//go:build cgo && unix

package api

/*
#include "shim.h"
*/
import "C"

import (
	"unsafe"

	"github.com/nocuda/cudashim/types"
)

// The two exported functions below are the interposition surface: built
// with -buildmode=c-shared they appear in the shared object's dynamic
// symbol table under their unmangled C names, so the loader resolves
// references to the vendor runtime's host allocation pair here instead.
//
// Note: files with //export directives only allow declarations in the cgo
// preamble, which is why the C helpers live in other files of this package.

// recoverStatus turns a panic in an exported function into a status code.
// A panic unwinding across the C boundary would abort the host process.
func recoverStatus(ret *C.cudaError_t, onPanic C.cudaError_t) {
	if rec := recover(); rec != nil {
		*ret = onPanic
	}
}

//export cudaMallocHost
func cudaMallocHost(ptr *unsafe.Pointer, size C.size_t) (ret C.cudaError_t) {
	defer recoverStatus(&ret, C.cudaErrorMemoryAllocation)

	p, status := AllocHost(uintptr(size))
	if status != types.StatusSuccess {
		// the output slot is left untouched, its value is unspecified
		return C.cudaErrorMemoryAllocation
	}
	*ptr = p
	return C.cudaSuccess
}

//export cudaFreeHost
func cudaFreeHost(ptr unsafe.Pointer) (ret C.cudaError_t) {
	defer recoverStatus(&ret, C.cudaSuccess)

	FreeHost(ptr)
	return C.cudaSuccess
}

// Test bridges. C types cannot be used in _test.go files, so tests drive
// the exported entry points through these.

func callMallocHost(size uintptr) (unsafe.Pointer, types.Status) {
	var ptr unsafe.Pointer
	ret := cudaMallocHost(&ptr, cusize(size))
	return ptr, types.Status(ret)
}

func callFreeHost(ptr unsafe.Pointer) types.Status {
	return types.Status(cudaFreeHost(ptr))
}
