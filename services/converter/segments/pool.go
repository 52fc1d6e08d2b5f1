// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package segments

// pool is a chunked arena with a free list, generalizing the free-list of
// fixed-size slots the original keeps under each Segment (its candidate
// pool) and under Segments (its segment pool). Slots are allocated in
// chunks of chunkSize; once a chunk's backing array exists it is never
// reallocated, so a *T handed out by alloc stays valid for the pool's
// lifetime, even as the outer chunk list grows. A plain growable []T would
// not have this property: append on a full slice copies every element to
// a new backing array and invalidates every outstanding pointer into it.
type pool[T any] struct {
	chunkSize int
	chunks    [][]T
	free      []*T
	live      int
}

// newPool creates a pool whose first chunk is pre-reserved at the given
// capacity, mirroring kCandidatesPoolSize=16 / the segment pool's 32.
func newPool[T any](chunkSize int) *pool[T] {
	p := &pool[T]{chunkSize: chunkSize}
	p.grow()
	return p
}

// grow appends one more chunk of chunkSize zero-valued slots to the arena
// and pushes pointers to each of its slots onto the free list.
func (p *pool[T]) grow() {
	chunk := make([]T, p.chunkSize)
	p.chunks = append(p.chunks, chunk)
	for i := range chunk {
		p.free = append(p.free, &chunk[i])
	}
}

// alloc returns a pointer to a zero-valued T drawn from the free list,
// growing the arena by one more chunk first if the free list is empty.
func (p *pool[T]) alloc() *T {
	if len(p.free) == 0 {
		p.grow()
	}
	n := len(p.free)
	slot := p.free[n-1]
	p.free = p.free[:n-1]
	var zero T
	*slot = zero
	p.live++
	return slot
}

// release returns slot to the free list for reuse by a later alloc. The
// caller must not otherwise dereference slot after release.
func (p *pool[T]) release(slot *T) {
	p.free = append(p.free, slot)
	p.live--
}

// liveCount reports the number of currently allocated (not yet released)
// slots, used by cmd/segviz's pool high-water-mark gauges.
func (p *pool[T]) liveCount() int {
	return p.live
}

// capacity reports the total number of slots ever allocated across all
// chunks, live or free.
func (p *pool[T]) capacity() int {
	return len(p.chunks) * p.chunkSize
}
