//go:build cgo && unix

package api

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/nocuda/cudashim/types"
)

func TestExportedMallocHost(t *testing.T) {
	ptr, status := callMallocHost(1024)
	require.Equal(t, types.StatusSuccess, status)
	require.NotEqual(t, unsafe.Pointer(nil), ptr)
	require.Zero(t, uintptr(ptr)%HostAlignment)
	require.Equal(t, types.StatusSuccess, callFreeHost(ptr))
}

func TestExportedMallocHostFailure(t *testing.T) {
	huge := ^uintptr(0) &^ uintptr(HostAlignment-1)
	ptr, status := callMallocHost(huge)
	require.Equal(t, types.StatusErrorMemoryAllocation, status)
	// the output slot must be left untouched on failure
	require.Equal(t, unsafe.Pointer(nil), ptr)
}

func TestExportedFreeHostNil(t *testing.T) {
	require.Equal(t, types.StatusSuccess, callFreeHost(nil))
}
