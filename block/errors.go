package block

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive capacity or a
	// non-power-of-two buffer alignment at construction.
	ErrInvalidConfig = errors.New("block: invalid capacity or alignment")

	// ErrAlignment indicates a request for stricter alignment than the
	// buffer itself guarantees.
	ErrAlignment = errors.New("block: unsupported alignment")

	// ErrNoSpace indicates that no gap, including the tail gap, is
	// large enough for the request.
	ErrNoSpace = errors.New("block: no gap large enough")

	// ErrForeignRef indicates a ref outside the managed buffer.
	ErrForeignRef = errors.New("block: ref outside managed buffer")

	// ErrUnmanagedBlock indicates an in-range ref that matches no live
	// allocation (double free or corrupted offset).
	ErrUnmanagedBlock = errors.New("block: no live allocation at ref")

	// ErrSizeMismatch indicates a Free whose size argument disagrees
	// with the live record at that offset.
	ErrSizeMismatch = errors.New("block: size does not match live allocation")

	// ErrReleased indicates use of an allocator after Release.
	ErrReleased = errors.New("block: use after Release")
)
