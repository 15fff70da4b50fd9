package block

import "unsafe"

// AllocTyped places one zeroed T in r and returns its handle and a
// typed pointer into the slot. The pointer stays valid until the ref is
// freed or the resource released.
//
// The garbage collector does not scan resource buffers: a T stored this
// way must not hold the sole reference to a separately heap-allocated
// object.
func AllocTyped[T any](r Resource) (Ref, *T, error) {
	var zero T
	ref, slot, err := r.Alloc(int64(unsafe.Sizeof(zero)), int64(unsafe.Alignof(zero)))
	if err != nil {
		return NilRef, nil, err
	}
	p := (*T)(unsafe.Pointer(&slot[0]))
	*p = zero
	return ref, p, nil
}

// View resolves a live ref to a typed pointer, with the resource's
// provenance checks.
func View[T any](r Resource, ref Ref) (*T, error) {
	slot, err := r.Slot(ref)
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&slot[0])), nil
}

// FreeTyped retires the slot holding a T, validating the recorded size
// against T's.
func FreeTyped[T any](r Resource, ref Ref) error {
	var zero T
	return r.Free(ref, int64(unsafe.Sizeof(zero)), int64(unsafe.Alignof(zero)))
}
