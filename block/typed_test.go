package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID     int64
	Weight float64
	Flags  uint32
}

// TestAllocTyped tests typed placement, zeroing, and round-tripping
// through View.
func TestAllocTyped(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)
	defer a.Release()

	ref, p, err := AllocTyped[payload](a)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, payload{}, *p, "slot should start zeroed")

	p.ID, p.Weight, p.Flags = 7, 2.5, 0xFF

	seen, err := View[payload](a, ref)
	require.NoError(t, err)
	assert.Equal(t, payload{ID: 7, Weight: 2.5, Flags: 0xFF}, *seen)

	require.NoError(t, FreeTyped[payload](a, ref))
	_, err = View[payload](a, ref)
	assert.ErrorIs(t, err, ErrUnmanagedBlock)
}

// TestAllocTyped_Reuse tests that a typed slot is reclaimed and reused.
func TestAllocTyped_Reuse(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)
	defer a.Release()

	ref1, _, err := AllocTyped[payload](a)
	require.NoError(t, err)
	require.NoError(t, FreeTyped[payload](a, ref1))

	ref2, p, err := AllocTyped[payload](a)
	require.NoError(t, err)
	assert.Equal(t, ref1, ref2, "freed slot should be reused first-fit")
	assert.Equal(t, payload{}, *p, "reused slot should be re-zeroed")
}

// TestFreeTyped_WrongType tests that freeing through a differently
// sized type is caught by the size check.
func TestFreeTyped_WrongType(t *testing.T) {
	a, err := New(1024)
	require.NoError(t, err)
	defer a.Release()

	ref, _, err := AllocTyped[payload](a)
	require.NoError(t, err)

	err = FreeTyped[byte](a, ref)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	require.NoError(t, FreeTyped[payload](a, ref), "record survived the bad free")
}
