package block

import (
	"fmt"
	"sort"

	"github.com/joshuapare/memkit/internal/align"
	"github.com/joshuapare/memkit/internal/membuf"
)

// record is one live allocation, the half-open byte range
// [offset, offset+size) within the buffer.
type record struct {
	offset int64
	size   int64
}

// Allocator is a fixed-capacity memory resource. It reserves its buffer
// once at construction and serves every allocation by first-fit
// placement over the gaps between live records. Not safe for concurrent
// use.
type Allocator struct {
	buf       []byte
	capacity  int64
	alignment int64
	release   func() error

	// Live allocations sorted by ascending offset. Records never
	// overlap and never extend past capacity.
	records []record

	stats Stats
}

var _ Resource = (*Allocator)(nil)

// New reserves a buffer of exactly capacity bytes, aligned to the
// configured buffer alignment (DefaultAlignment unless WithAlignment
// overrides it). This is the only point at which the system allocator
// is touched until Release.
func New(capacity int64, opts ...Option) (*Allocator, error) {
	cfg := config{alignment: DefaultAlignment}
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity <= 0 || !align.PowerOfTwo(cfg.alignment) {
		return nil, fmt.Errorf("%w: capacity=%d alignment=%d",
			ErrInvalidConfig, capacity, cfg.alignment)
	}
	buf, release, err := membuf.Reserve(capacity, cfg.alignment)
	if err != nil {
		return nil, fmt.Errorf("block: reserve %d bytes: %w", capacity, err)
	}
	return &Allocator{
		buf:       buf,
		capacity:  capacity,
		alignment: cfg.alignment,
		release:   release,
	}, nil
}

// Alloc implements Resource. On failure no record is inserted and the
// allocator state is unchanged.
func (a *Allocator) Alloc(size, alignment int64) (Ref, []byte, error) {
	if a.buf == nil {
		return NilRef, nil, ErrReleased
	}
	if size <= 0 {
		// Every allocation occupies at least one addressable byte.
		size = 1
	}
	if alignment == 0 {
		alignment = MaxScalarAlignment
	}
	if !align.PowerOfTwo(alignment) {
		return NilRef, nil, fmt.Errorf("%w: %d is not a power of two",
			ErrAlignment, alignment)
	}
	if alignment > a.alignment {
		return NilRef, nil, fmt.Errorf("%w: need %d, buffer guarantees %d",
			ErrAlignment, alignment, a.alignment)
	}

	off, ok := a.findGap(size, alignment)
	if !ok {
		a.stats.FailedAllocs++
		return NilRef, nil, fmt.Errorf("%w: %d bytes, alignment %d",
			ErrNoSpace, size, alignment)
	}
	a.insert(record{offset: off, size: size})
	a.stats.AllocCalls++
	a.stats.BytesAllocated += size
	return Ref(off), a.buf[off : off+size : off+size], nil
}

// findGap walks the record list in offset order and returns the offset
// of the first gap that fits, including the tail gap after the last
// record.
func (a *Allocator) findGap(size, alignment int64) (int64, bool) {
	cursor := int64(0)
	for _, rec := range a.records {
		candidate := align.Up(cursor, alignment)
		if !align.AddOverflows(candidate, size) && candidate+size <= rec.offset {
			return candidate, true
		}
		cursor = rec.offset + rec.size
	}
	candidate := align.Up(cursor, alignment)
	if !align.AddOverflows(candidate, size) && candidate+size <= a.capacity {
		return candidate, true
	}
	return 0, false
}

// insert places rec at the position preserving ascending-offset order.
func (a *Allocator) insert(rec record) {
	i := sort.Search(len(a.records), func(i int) bool {
		return a.records[i].offset >= rec.offset
	})
	a.records = append(a.records, record{})
	copy(a.records[i+1:], a.records[i:])
	a.records[i] = rec
}

// lookup binary-searches the record list for an exact offset match.
func (a *Allocator) lookup(offset int64) (int, bool) {
	i := sort.Search(len(a.records), func(i int) bool {
		return a.records[i].offset >= offset
	})
	if i < len(a.records) && a.records[i].offset == offset {
		return i, true
	}
	return 0, false
}

// Free implements Resource. A nonzero size must match the record; the
// alignment argument is accepted for symmetry with Alloc and otherwise
// ignored, since the committed offset already proves the original
// alignment held. On failure no record is removed.
func (a *Allocator) Free(ref Ref, size, alignment int64) error {
	_ = alignment
	if ref == NilRef {
		return nil
	}
	if a.buf == nil {
		return ErrReleased
	}
	off := int64(ref)
	if off < 0 || off >= a.capacity {
		return fmt.Errorf("%w: ref %d, capacity %d", ErrForeignRef, ref, a.capacity)
	}
	i, ok := a.lookup(off)
	if !ok {
		return fmt.Errorf("%w: ref %d", ErrUnmanagedBlock, ref)
	}
	if size != 0 && size != a.records[i].size {
		return fmt.Errorf("%w: ref %d holds %d bytes, caller said %d",
			ErrSizeMismatch, ref, a.records[i].size, size)
	}
	a.stats.FreeCalls++
	a.stats.BytesFreed += a.records[i].size
	a.records = append(a.records[:i], a.records[i+1:]...)
	return nil
}

// Slot implements Resource.
func (a *Allocator) Slot(ref Ref) ([]byte, error) {
	if a.buf == nil {
		return nil, ErrReleased
	}
	off := int64(ref)
	if off < 0 || off >= a.capacity {
		return nil, fmt.Errorf("%w: ref %d, capacity %d", ErrForeignRef, ref, a.capacity)
	}
	i, ok := a.lookup(off)
	if !ok {
		return nil, fmt.Errorf("%w: ref %d", ErrUnmanagedBlock, ref)
	}
	rec := a.records[i]
	return a.buf[rec.offset : rec.offset+rec.size : rec.offset+rec.size], nil
}

// Capacity implements Resource.
func (a *Allocator) Capacity() int64 {
	return a.capacity
}

// Alignment returns the buffer alignment, the strictest alignment Alloc
// can honor.
func (a *Allocator) Alignment() int64 {
	return a.alignment
}

// Release returns the buffer to the system. Every subsequent operation
// fails with ErrReleased. Release is idempotent. Containers bound to
// the allocator must be closed first; their refs die with the buffer.
func (a *Allocator) Release() error {
	if a.buf == nil {
		return nil
	}
	a.buf = nil
	a.records = nil
	return a.release()
}
