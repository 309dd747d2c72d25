//go:build !cgo && unix

package api

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/nocuda/cudashim/types"
)

func TestNoMappingsLeakAfterCycles(t *testing.T) {
	require.Zero(t, liveHostAllocations())
	for i := 0; i < 1000; i++ {
		ptr, status := AllocHost(4096)
		require.Equal(t, types.StatusSuccess, status)
		require.Equal(t, types.StatusSuccess, FreeHost(ptr))
	}
	require.Zero(t, liveHostAllocations())
}

func TestFreeHostUnknownPointerIsNoOp(t *testing.T) {
	var x byte
	require.Equal(t, types.StatusSuccess, FreeHost(unsafe.Pointer(&x)))
}

func TestAllocHostZeroSizeRoundsUpToPage(t *testing.T) {
	ptr, status := AllocHost(0)
	require.Equal(t, types.StatusSuccess, status)
	require.NotEqual(t, unsafe.Pointer(nil), ptr)
	require.Equal(t, types.StatusSuccess, FreeHost(ptr))
}
