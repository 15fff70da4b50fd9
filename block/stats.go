package block

// Stats holds allocation counters for instrumentation and tests.
type Stats struct {
	AllocCalls     int   // successful Alloc calls
	FreeCalls      int   // successful Free calls
	FailedAllocs   int   // Alloc calls that failed with ErrNoSpace
	BytesAllocated int64 // total bytes handed out
	BytesFreed     int64 // total bytes returned
	LiveBlocks     int   // records currently live
	LiveBytes      int64 // bytes currently live
}

// Stats returns a copy of the allocator's counters.
func (a *Allocator) Stats() Stats {
	s := a.stats
	s.LiveBlocks = len(a.records)
	for _, rec := range a.records {
		s.LiveBytes += rec.size
	}
	return s
}

// Available returns the total free bytes, ignoring fragmentation.
func (a *Allocator) Available() int64 {
	live := int64(0)
	for _, rec := range a.records {
		live += rec.size
	}
	return a.capacity - live
}

// LargestGap returns the size of the largest contiguous free gap. A
// request larger than this fails with ErrNoSpace even when Available
// reports enough total free space, since freed gaps are never coalesced
// across live records.
func (a *Allocator) LargestGap() int64 {
	cursor, largest := int64(0), int64(0)
	for _, rec := range a.records {
		if gap := rec.offset - cursor; gap > largest {
			largest = gap
		}
		cursor = rec.offset + rec.size
	}
	if gap := a.capacity - cursor; gap > largest {
		largest = gap
	}
	return largest
}
