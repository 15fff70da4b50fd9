// Package align provides the alignment and bounds arithmetic shared by
// the block allocator and its consumers.
package align

import "math"

// PowerOfTwo reports whether n is a positive power of two.
func PowerOfTwo(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// Up rounds off up to the next multiple of alignment. An alignment of
// zero leaves off unchanged.
func Up(off, alignment int64) int64 {
	if alignment == 0 {
		return off
	}
	rem := off % alignment
	if rem == 0 {
		return off
	}
	return off + (alignment - rem)
}

// AddOverflows reports whether a+b overflows int64 for non-negative a
// and b. Candidate offsets near capacity pass through here before any
// bounds comparison.
func AddOverflows(a, b int64) bool {
	return b > 0 && a > math.MaxInt64-b
}
