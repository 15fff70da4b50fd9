// Package membuf reserves the single backing buffer a block allocator
// manages. Reservation happens once at construction and release once at
// destruction; no other traffic reaches the system allocator in
// between.
package membuf

import (
	"fmt"
	"unsafe"
)

// reservePadded over-allocates from the Go heap and slices the region
// to the first address meeting alignment. Used on platforms without
// mmap and for alignments stricter than a page.
func reservePadded(size, alignment int64) ([]byte, func() error, error) {
	if err := validate(size, alignment); err != nil {
		return nil, nil, err
	}
	buf := make([]byte, size+alignment)
	shift := int64(0)
	if alignment > 0 {
		addr := uintptr(unsafe.Pointer(&buf[0]))
		if rem := int64(addr) % alignment; rem != 0 {
			shift = alignment - rem
		}
	}
	region := buf[shift : shift+size : shift+size]
	// The Go runtime owns the memory; releasing is dropping the
	// reference.
	return region, func() error { return nil }, nil
}

func validate(size, alignment int64) error {
	if size <= 0 {
		return fmt.Errorf("membuf: invalid size %d", size)
	}
	if alignment < 0 {
		return fmt.Errorf("membuf: invalid alignment %d", alignment)
	}
	return nil
}
