//go:build unix

package membuf

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Reserve maps an anonymous private region of exactly size bytes and
// returns it with a release function. Mappings are page-aligned, which
// covers every alignment up to a page; stricter alignments fall back to
// the padded heap path.
func Reserve(size, alignment int64) ([]byte, func() error, error) {
	if err := validate(size, alignment); err != nil {
		return nil, nil, err
	}
	if alignment > int64(unix.Getpagesize()) {
		return reservePadded(size, alignment)
	}
	data, err := unix.Mmap(-1, 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, release, nil
}
