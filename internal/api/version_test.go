package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShimVersion(t *testing.T) {
	v, err := ShimVersion()
	require.NoError(t, err)
	require.NotEmpty(t, v)
}
