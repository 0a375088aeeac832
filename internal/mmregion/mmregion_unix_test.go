//go:build unix

package mmregion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	const size = 64 * 1024
	data, cleanup, err := Map(size)
	require.NoError(t, err)
	require.Len(t, data, size)

	// The mapping must be writable end to end.
	data[0] = 0x01
	data[size-1] = 0xFF
	assert.Equal(t, byte(0x01), data[0])
	assert.Equal(t, byte(0xFF), data[size-1])

	require.NoError(t, cleanup())
	require.NoError(t, cleanup(), "double cleanup should be a no-op")
}

func TestMap_InvalidSize(t *testing.T) {
	_, _, err := Map(0)
	require.Error(t, err)
	_, _, err = Map(-1)
	require.Error(t, err)
}
