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

import "fmt"

// SegmentType tags the role a Segment plays within a Segments container.
type SegmentType int

const (
	SegmentFree SegmentType = iota
	SegmentFixedBoundary
	SegmentFixedValue
	SegmentSubmitted
	SegmentHistory
)

// candidatesPoolSize is the number of candidate slots pre-reserved per
// segment before the pool grows.
const candidatesPoolSize = 16

// Segment owns an ordered, deque-addressable list of candidates plus a
// fixed-size parallel array of meta candidates. Candidate handles returned
// by push/insert are pointer-stable across further push/pop/insert/move at
// other positions in the same segment; they are invalidated only by
// Clear or by the segment's destruction.
type Segment struct {
	segmentType SegmentType
	key         string

	pool       *pool[Candidate]
	candidates []*Candidate

	metaCandidates []Candidate

	removedForDebug []Candidate
}

// NewSegment returns a Segment ready for use, with its candidate pool
// pre-reserved at candidatesPoolSize.
func NewSegment() *Segment {
	return &Segment{pool: newPool[Candidate](candidatesPoolSize)}
}

// SegmentType returns the segment's type tag.
func (s *Segment) SegmentType() SegmentType { return s.segmentType }

// SetSegmentType sets the segment's type tag.
func (s *Segment) SetSegmentType(t SegmentType) { s.segmentType = t }

// Key returns the reading key this segment covers.
func (s *Segment) Key() string { return s.key }

// SetKey sets the reading key this segment covers.
func (s *Segment) SetKey(key string) { s.key = key }

// CandidatesSize returns the number of non-meta candidates.
func (s *Segment) CandidatesSize() int { return len(s.candidates) }

// CandidatePoolLive returns the number of candidate slots currently
// allocated (not yet released) in this segment's pool.
func (s *Segment) CandidatePoolLive() int { return s.pool.liveCount() }

// CandidatePoolCapacity returns the total number of candidate slots ever
// allocated across all chunks in this segment's pool.
func (s *Segment) CandidatePoolCapacity() int { return s.pool.capacity() }

// MetaCandidatesSize returns the number of meta candidates.
func (s *Segment) MetaCandidatesSize() int { return len(s.metaCandidates) }

// IsValidIndex reports whether i addresses a candidate: i >= 0 and
// i < CandidatesSize(), or i < 0 and (-i-1) < MetaCandidatesSize().
func (s *Segment) IsValidIndex(i int) bool {
	if i >= 0 {
		return i < len(s.candidates)
	}
	return -i-1 < len(s.metaCandidates)
}

// Candidate returns the candidate at signed index i: non-negative indices
// address the regular candidate list, negative indices address the meta
// candidate array via meta_index = -i-1. Out-of-range i is a programmer
// error.
func (s *Segment) Candidate(i int) *Candidate {
	invariantf("Candidate", s.IsValidIndex(i), "index %d out of range (candidates=%d meta=%d)", i, len(s.candidates), len(s.metaCandidates))
	if i >= 0 {
		return s.candidates[i]
	}
	return &s.metaCandidates[-i-1]
}

// PushFrontCandidate allocates a zero-initialized candidate from the pool
// and places it at index 0, returning a borrowed handle.
func (s *Segment) PushFrontCandidate() *Candidate {
	return s.InsertCandidate(0)
}

// PushBackCandidate allocates a zero-initialized candidate from the pool
// and appends it, returning a borrowed handle.
func (s *Segment) PushBackCandidate() *Candidate {
	return s.InsertCandidate(len(s.candidates))
}

// AddCandidate is an alias of PushBackCandidate.
func (s *Segment) AddCandidate() *Candidate {
	return s.PushBackCandidate()
}

// InsertCandidate allocates a zero-initialized candidate from the pool and
// inserts it before position i, returning a borrowed handle.
func (s *Segment) InsertCandidate(i int) *Candidate {
	invariantf("InsertCandidate", i >= 0 && i <= len(s.candidates), "insert index %d out of range [0,%d]", i, len(s.candidates))
	c := s.pool.alloc()
	s.candidates = append(s.candidates, nil)
	copy(s.candidates[i+1:], s.candidates[i:])
	s.candidates[i] = c
	return c
}

// InsertCandidateValue takes ownership of an externally constructed
// candidate, copying it into pool storage at position i, and returns a
// borrowed handle to the pool-owned copy.
func (s *Segment) InsertCandidateValue(i int, c Candidate) *Candidate {
	slot := s.InsertCandidate(i)
	*slot = c
	return slot
}

// InsertCandidates bulk-inserts a list of externally constructed
// candidates before position i, preserving their order. The insertion is
// atomic: either every candidate is inserted or (on an out-of-range i)
// none are.
func (s *Segment) InsertCandidates(i int, cs []Candidate) {
	invariantf("InsertCandidates", i >= 0 && i <= len(s.candidates), "insert index %d out of range [0,%d]", i, len(s.candidates))
	for j, c := range cs {
		s.InsertCandidateValue(i+j, c)
	}
}

// PopFrontCandidate removes the first candidate, returning its storage to
// the pool.
func (s *Segment) PopFrontCandidate() {
	s.EraseCandidate(0)
}

// PopBackCandidate removes the last candidate, returning its storage to
// the pool.
func (s *Segment) PopBackCandidate() {
	invariantf("PopBackCandidate", len(s.candidates) > 0, "pop from empty segment")
	s.EraseCandidate(len(s.candidates) - 1)
}

// EraseCandidate removes the candidate at index i, returning its storage
// to the pool for reuse by a subsequent push/insert. Handles to other
// candidates remain valid; their indices may shift.
func (s *Segment) EraseCandidate(i int) {
	invariantf("EraseCandidate", i >= 0 && i < len(s.candidates), "erase index %d out of range [0,%d)", i, len(s.candidates))
	s.pool.release(s.candidates[i])
	copy(s.candidates[i:], s.candidates[i+1:])
	s.candidates[len(s.candidates)-1] = nil
	s.candidates = s.candidates[:len(s.candidates)-1]
}

// EraseCandidates removes n candidates starting at index i.
func (s *Segment) EraseCandidates(i, n int) {
	invariantf("EraseCandidates", n >= 0, "negative count %d", n)
	invariantf("EraseCandidates", i >= 0 && i+n <= len(s.candidates), "range [%d,%d) out of bounds [0,%d)", i, i+n, len(s.candidates))
	for _, c := range s.candidates[i : i+n] {
		s.pool.release(c)
	}
	copy(s.candidates[i:], s.candidates[i+n:])
	for k := len(s.candidates) - n; k < len(s.candidates); k++ {
		s.candidates[k] = nil
	}
	s.candidates = s.candidates[:len(s.candidates)-n]
}

// ClearCandidates removes all non-meta candidates; meta candidates are
// retained.
func (s *Segment) ClearCandidates() {
	if len(s.candidates) > 0 {
		s.EraseCandidates(0, len(s.candidates))
	}
}

// MoveCandidate repositions the candidate at oldIndex to newIndex,
// shifting the intervening entries. No reallocation occurs: the handle to
// the moved candidate remains valid, as do handles to intervening
// candidates (though their indices change).
func (s *Segment) MoveCandidate(oldIndex, newIndex int) {
	invariantf("MoveCandidate", oldIndex >= 0 && oldIndex < len(s.candidates), "old index %d out of range [0,%d)", oldIndex, len(s.candidates))
	invariantf("MoveCandidate", newIndex >= 0 && newIndex < len(s.candidates), "new index %d out of range [0,%d)", newIndex, len(s.candidates))
	if oldIndex == newIndex {
		return
	}
	c := s.candidates[oldIndex]
	if oldIndex < newIndex {
		copy(s.candidates[oldIndex:newIndex], s.candidates[oldIndex+1:newIndex+1])
	} else {
		copy(s.candidates[newIndex+1:oldIndex+1], s.candidates[newIndex:oldIndex])
	}
	s.candidates[newIndex] = c
}

// MetaCandidate returns the meta candidate at index i.
func (s *Segment) MetaCandidate(i int) *Candidate {
	invariantf("MetaCandidate", i >= 0 && i < len(s.metaCandidates), "meta index %d out of range [0,%d)", i, len(s.metaCandidates))
	return &s.metaCandidates[i]
}

// AddMetaCandidate appends a zero-valued meta candidate and returns a
// borrowed handle to it. Unlike regular candidates, meta candidates are
// value-stored directly in the segment, not drawn from the pool.
func (s *Segment) AddMetaCandidate() *Candidate {
	s.metaCandidates = append(s.metaCandidates, Candidate{})
	return &s.metaCandidates[len(s.metaCandidates)-1]
}

// ClearMetaCandidates empties the meta candidate array.
func (s *Segment) ClearMetaCandidates() {
	s.metaCandidates = s.metaCandidates[:0]
}

// MetaCandidates returns the backing meta candidate slice for bulk
// inspection or in-place editing by the caller.
func (s *Segment) MetaCandidates() []Candidate {
	return s.metaCandidates
}

// RemovedCandidatesForDebug returns the debug scratch slice of candidates
// callers have chosen to retain after removing them. Always present; never
// populated by Segment's own erase/pop operations.
func (s *Segment) RemovedCandidatesForDebug() []Candidate {
	return s.removedForDebug
}

// AppendRemovedCandidateForDebug records c in the debug scratch slice.
func (s *Segment) AppendRemovedCandidateForDebug(c Candidate) {
	s.removedForDebug = append(s.removedForDebug, c)
}

// Clear empties candidates, meta candidates, and the removed-for-debug
// slice, and resets the type to FREE and the key to empty. The pool
// itself is retained (and its freed slots remain available for reuse).
func (s *Segment) Clear() {
	for _, c := range s.candidates {
		s.pool.release(c)
	}
	s.candidates = s.candidates[:0]
	s.metaCandidates = s.metaCandidates[:0]
	s.removedForDebug = nil
	s.segmentType = SegmentFree
	s.key = ""
}

// CopyFrom deep-copies src into s: every candidate and meta candidate is
// duplicated into s's own pool. Handles from src do not alias into s.
func (s *Segment) CopyFrom(src *Segment) {
	s.Clear()
	s.segmentType = src.segmentType
	s.key = src.key
	for _, c := range src.candidates {
		dst := s.PushBackCandidate()
		*dst = *c
	}
	s.metaCandidates = append(s.metaCandidates[:0], src.metaCandidates...)
	s.removedForDebug = append([]Candidate(nil), src.removedForDebug...)
}

// DebugString renders a human-readable dump of s.
func (s *Segment) DebugString() string {
	return fmt.Sprintf("Segment{type=%d key=%q candidates=%d meta=%d}", s.segmentType, s.key, len(s.candidates), len(s.metaCandidates))
}
