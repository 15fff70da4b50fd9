//go:build !unix

package membuf

// Reserve allocates the region from the Go heap when mmap is not
// available.
func Reserve(size, alignment int64) ([]byte, func() error, error) {
	return reservePadded(size, alignment)
}
