package block

// Ref is an offset handle into a resource's buffer, issued by Alloc.
// It identifies one live allocation for the lifetime between the Alloc
// that produced it and the Free that retires it.
type Ref int64

// NilRef is the handle analog of a nil pointer. Freeing it is a no-op
// and no Alloc ever returns it.
const NilRef Ref = -1

// Resource is the capability surface consumers allocate against.
// *Allocator is the single concrete implementation; the interface
// exists so containers bind to the contract, not the strategy.
type Resource interface {
	// Alloc places size bytes at the first sufficiently large gap
	// meeting alignment and returns the handle plus the byte window it
	// governs. A zero size allocates one byte; a zero alignment means
	// MaxScalarAlignment.
	Alloc(size, alignment int64) (Ref, []byte, error)

	// Free retires a live allocation. Size and alignment mirror the
	// Alloc arguments; a nonzero size is validated against the record,
	// alignment is accepted for symmetry only.
	Free(ref Ref, size, alignment int64) error

	// Slot resolves a live ref to its byte window, with the same
	// provenance checks as Free.
	Slot(ref Ref) ([]byte, error)

	// Capacity returns the fixed buffer size in bytes.
	Capacity() int64
}

// Same reports whether a and b are the same resource instance.
// Allocations from one resource are never interchangeable with
// another's bookkeeping, so equality is identity.
func Same(a, b Resource) bool {
	return a == b
}
