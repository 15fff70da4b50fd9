package align

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerOfTwo(t *testing.T) {
	for _, n := range []int64{1, 2, 4, 8, 64, 4096, 1 << 40} {
		assert.True(t, PowerOfTwo(n), "%d is a power of two", n)
	}
	for _, n := range []int64{0, -1, -8, 3, 6, 12, 100, 1<<40 + 1} {
		assert.False(t, PowerOfTwo(n), "%d is not a power of two", n)
	}
}

func TestUp(t *testing.T) {
	cases := []struct {
		off, alignment, want int64
	}{
		{0, 8, 0},
		{1, 8, 8},
		{7, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{17, 16, 32},
		{100, 64, 128},
		{128, 64, 128},
		// Zero alignment passes the offset through.
		{13, 0, 13},
		{0, 0, 0},
		{5, 1, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Up(tc.off, tc.alignment), "Up(%d, %d)", tc.off, tc.alignment)
	}
}

func TestAddOverflows(t *testing.T) {
	assert.False(t, AddOverflows(0, 0))
	assert.False(t, AddOverflows(1<<40, 1<<40))
	assert.False(t, AddOverflows(math.MaxInt64, 0))
	assert.False(t, AddOverflows(math.MaxInt64-1, 1))
	assert.True(t, AddOverflows(math.MaxInt64, 1))
	assert.True(t, AddOverflows(1, math.MaxInt64))
	assert.True(t, AddOverflows(math.MaxInt64/2+1, math.MaxInt64/2+1))
}
