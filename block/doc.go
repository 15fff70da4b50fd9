// Package block provides a fixed-capacity memory resource with
// first-fit placement and provenance-checked release.
//
// # Overview
//
// An Allocator owns one contiguous buffer, reserved once at
// construction and released once by Release. Live allocations are the
// only bookkeeping: an offset-sorted list of (offset, size) records.
// Free space is never tracked separately; it is recomputed on demand as
// the gaps between consecutive records and the buffer bounds.
//
// # Placement
//
// Alloc walks the record list in offset order with a cursor starting at
// zero. For each record it rounds the cursor up to the requested
// alignment and commits into the gap before the record when the request
// fits, otherwise it advances the cursor past the record. The tail gap
// after the last record is tried last. The first sufficiently large gap
// wins; there is no best-fit search.
//
// # Fragmentation
//
// Freed space is recovered implicitly: removing a record enlarges the
// hole the next placement scan sees. Adjacent freed gaps separated by a
// live record are never merged, so a request can fail with ErrNoSpace
// while Available still reports enough total free space. LargestGap
// reports the biggest request that can currently succeed.
//
// # Handles
//
// Alloc returns a Ref, the offset of the placement, alongside the byte
// window it governs. Free and Slot check provenance: a ref outside the
// buffer fails with ErrForeignRef, and an in-range ref that matches no
// live record fails with ErrUnmanagedBlock. Offsets are stable for the
// lifetime of the allocation, which makes Ref safe to embed in
// allocator-resident structures (see AllocTyped).
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize
// access externally.
package block
