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

import (
	"strings"

	"github.com/haruna-ime/convcore/services/converter/lattice"
)

// segmentPoolSize is the number of segment slots pre-reserved before the
// pool grows.
const segmentPoolSize = 32

// RevertEntryType distinguishes a fresh learning record from an update to
// one already written.
type RevertEntryType uint16

const (
	CreateEntry RevertEntryType = 0
	UpdateEntry RevertEntryType = 1
)

// RevertEntry is one opaque record a learner writes so it can undo its
// last update on user revert. Interpretation belongs entirely to learning
// components, keyed by ID; this container only stores and orders them.
type RevertEntry struct {
	Type      RevertEntryType
	ID        uint16
	Timestamp uint32
	Key       string
}

// Segments owns an ordered list of segment handles, conceptually
// partitioned into a prefix of history segments (type HISTORY or
// SUBMITTED) and a suffix of conversion segments (everything else), plus a
// revert journal and one cached lattice. The partition index is derived by
// scanning from the front on every query, never cached, so an in-place
// segment-type mutation anywhere in the list is immediately reflected.
type Segments struct {
	maxHistorySegmentsSize uint
	resized                bool

	pool     *pool[Segment]
	segments []*Segment

	revertEntries []RevertEntry

	cachedLattice lattice.Lattice
}

// New returns a Segments ready for use, with its segment pool pre-reserved
// at segmentPoolSize.
func New() *Segments {
	return &Segments{pool: newPool[Segment](segmentPoolSize)}
}

// SegmentsSize returns the total number of segments (history + conversion).
func (s *Segments) SegmentsSize() int { return len(s.segments) }

// SegmentPoolLive returns the number of segment slots currently allocated
// (not yet released) in the segment pool.
func (s *Segments) SegmentPoolLive() int { return s.pool.liveCount() }

// SegmentPoolCapacity returns the total number of segment slots ever
// allocated across all chunks in the segment pool.
func (s *Segments) SegmentPoolCapacity() int { return s.pool.capacity() }

// historySegmentsEnd returns the index one past the longest prefix of
// segments whose type is HISTORY or SUBMITTED: the history/conversion
// partition boundary. Computed on demand; there is no separate stored
// count, so any in-place segment-type mutation moves the boundary
// immediately. Every other history/conversion accessor is defined in
// terms of this one, mirroring the original C++ history_segments_end()
// private iterator accessor that every other partition accessor called
// through.
func (s *Segments) historySegmentsEnd() int {
	n := 0
	for _, seg := range s.segments {
		t := seg.SegmentType()
		if t != SegmentHistory && t != SegmentSubmitted {
			break
		}
		n++
	}
	return n
}

// HistorySegmentsSize returns the length of the longest prefix of segments
// whose type is HISTORY or SUBMITTED.
func (s *Segments) HistorySegmentsSize() int {
	return s.historySegmentsEnd()
}

// ConversionSegmentsSize returns SegmentsSize() - HistorySegmentsSize().
func (s *Segments) ConversionSegmentsSize() int {
	return len(s.segments) - s.historySegmentsEnd()
}

// Segment returns the segment at index i in the full (history + conversion)
// list.
func (s *Segments) Segment(i int) *Segment {
	invariantf("Segment", i >= 0 && i < len(s.segments), "index %d out of range [0,%d)", i, len(s.segments))
	return s.segments[i]
}

// HistorySegment returns the i-th history segment: segment(i) for
// i < HistorySegmentsSize().
func (s *Segments) HistorySegment(i int) *Segment {
	invariantf("HistorySegment", i >= 0 && i < s.HistorySegmentsSize(), "index %d out of range [0,%d)", i, s.HistorySegmentsSize())
	return s.segments[i]
}

// ConversionSegment returns the j-th conversion segment: segment(history_size+j).
func (s *Segments) ConversionSegment(j int) *Segment {
	hs := s.HistorySegmentsSize()
	invariantf("ConversionSegment", j >= 0 && j < len(s.segments)-hs, "index %d out of range [0,%d)", j, len(s.segments)-hs)
	return s.segments[hs+j]
}

// All returns a range over every segment, history and conversion alike.
func (s *Segments) All() Range[*Segment] {
	return newRange(s.segments)
}

// HistorySegments returns a range over the history prefix.
func (s *Segments) HistorySegments() Range[*Segment] {
	return newRange(s.segments).Take(s.HistorySegmentsSize())
}

// ConversionSegments returns a range over the conversion suffix.
func (s *Segments) ConversionSegments() Range[*Segment] {
	return newRange(s.segments).Drop(s.HistorySegmentsSize())
}

// PushFrontSegment allocates a fresh segment from the pool and places it
// at index 0, returning a borrowed handle.
func (s *Segments) PushFrontSegment() *Segment {
	return s.InsertSegment(0)
}

// PushBackSegment allocates a fresh segment from the pool and appends it,
// returning a borrowed handle.
func (s *Segments) PushBackSegment() *Segment {
	return s.InsertSegment(len(s.segments))
}

// AddSegment is an alias of PushBackSegment.
func (s *Segments) AddSegment() *Segment {
	return s.PushBackSegment()
}

// InsertSegment allocates a fresh segment from the pool and inserts it
// before position i, returning a borrowed handle.
func (s *Segments) InsertSegment(i int) *Segment {
	invariantf("InsertSegment", i >= 0 && i <= len(s.segments), "insert index %d out of range [0,%d]", i, len(s.segments))
	seg := s.pool.alloc()
	if seg.pool == nil {
		// alloc zeroes the reused slot, including its own candidate pool;
		// a fresh one is fine here since the previous occupant was erased
		// (and therefore already Clear()-ed) before this slot was freed.
		seg.pool = newPool[Candidate](candidatesPoolSize)
	}
	s.segments = append(s.segments, nil)
	copy(s.segments[i+1:], s.segments[i:])
	s.segments[i] = seg
	return seg
}

// PopFrontSegment removes the first segment, returning its storage to the
// pool.
func (s *Segments) PopFrontSegment() {
	s.EraseSegment(0)
}

// PopBackSegment removes the last segment, returning its storage to the
// pool.
func (s *Segments) PopBackSegment() {
	invariantf("PopBackSegment", len(s.segments) > 0, "pop from empty segments")
	s.EraseSegment(len(s.segments) - 1)
}

// EraseSegment removes the segment at index i, returning its storage to
// the pool for reuse.
func (s *Segments) EraseSegment(i int) {
	invariantf("EraseSegment", i >= 0 && i < len(s.segments), "erase index %d out of range [0,%d)", i, len(s.segments))
	seg := s.segments[i]
	seg.Clear()
	s.pool.release(seg)
	copy(s.segments[i:], s.segments[i+1:])
	s.segments[len(s.segments)-1] = nil
	s.segments = s.segments[:len(s.segments)-1]
}

// EraseSegments removes n segments starting at index i.
func (s *Segments) EraseSegments(i, n int) {
	invariantf("EraseSegments", n >= 0, "negative count %d", n)
	invariantf("EraseSegments", i >= 0 && i+n <= len(s.segments), "range [%d,%d) out of bounds [0,%d)", i, i+n, len(s.segments))
	for _, seg := range s.segments[i : i+n] {
		seg.Clear()
		s.pool.release(seg)
	}
	copy(s.segments[i:], s.segments[i+n:])
	for k := len(s.segments) - n; k < len(s.segments); k++ {
		s.segments[k] = nil
	}
	s.segments = s.segments[:len(s.segments)-n]
}

// ClearHistorySegments removes the history prefix.
func (s *Segments) ClearHistorySegments() {
	if hs := s.HistorySegmentsSize(); hs > 0 {
		s.EraseSegments(0, hs)
	}
}

// ClearConversionSegments removes the conversion suffix.
func (s *Segments) ClearConversionSegments() {
	hs := s.HistorySegmentsSize()
	if n := len(s.segments) - hs; n > 0 {
		s.EraseSegments(hs, n)
	}
}

// ClearSegments removes every segment, history and conversion alike.
func (s *Segments) ClearSegments() {
	if len(s.segments) > 0 {
		s.EraseSegments(0, len(s.segments))
	}
}

// Clear empties the segment list, resets resized to false, and empties the
// revert journal and pool.
func (s *Segments) Clear() {
	s.ClearSegments()
	s.resized = false
	s.revertEntries = nil
}

// SetMaxHistorySegmentsSize records a cap on history segments. Enforcement
// is caller-driven: the container never trims history segments itself;
// callers remove the oldest ones until the cap holds.
func (s *Segments) SetMaxHistorySegmentsSize(n uint) {
	s.maxHistorySegmentsSize = n
}

// MaxHistorySegmentsSize returns the recorded cap.
func (s *Segments) MaxHistorySegmentsSize() uint {
	return s.maxHistorySegmentsSize
}

// HistoryKey concatenates the keys of the last min(n, HistorySegmentsSize())
// history segments in order. n = -1 means all.
func (s *Segments) HistoryKey(n int) string {
	hs := s.HistorySegmentsSize()
	count := historyWindowCount(n, hs)
	var b strings.Builder
	for i := hs - count; i < hs; i++ {
		b.WriteString(s.segments[i].Key())
	}
	return b.String()
}

// HistoryValue is the analogous concatenation of the value of candidate 0
// of each history segment in the window. A history segment with no
// candidates contributes the empty string.
func (s *Segments) HistoryValue(n int) string {
	hs := s.HistorySegmentsSize()
	count := historyWindowCount(n, hs)
	var b strings.Builder
	for i := hs - count; i < hs; i++ {
		seg := s.segments[i]
		if seg.CandidatesSize() > 0 {
			b.WriteString(seg.Candidate(0).Value)
		}
	}
	return b.String()
}

// historyWindowCount resolves n into the number of trailing history
// segments to include: -1 means all, and any n >= historySize also means
// all.
func historyWindowCount(n int, historySize int) int {
	if n < 0 || n > historySize {
		return historySize
	}
	return n
}

// Resized reports whether the UI explicitly altered segment boundaries.
func (s *Segments) Resized() bool { return s.resized }

// SetResized records that the UI explicitly altered segment boundaries, so
// downstream logic can avoid overriding the manual choice.
func (s *Segments) SetResized(b bool) { s.resized = b }

// RevertEntriesSize returns the number of entries in the revert journal.
func (s *Segments) RevertEntriesSize() int { return len(s.revertEntries) }

// RevertEntry returns the i-th revert entry, in insertion order.
func (s *Segments) RevertEntry(i int) *RevertEntry {
	invariantf("RevertEntry", i >= 0 && i < len(s.revertEntries), "index %d out of range [0,%d)", i, len(s.revertEntries))
	return &s.revertEntries[i]
}

// PushBackRevertEntry appends a default-initialized entry and returns a
// mutable handle to it.
func (s *Segments) PushBackRevertEntry() *RevertEntry {
	s.revertEntries = append(s.revertEntries, RevertEntry{})
	return &s.revertEntries[len(s.revertEntries)-1]
}

// ClearRevertEntries empties the revert journal without touching segments.
func (s *Segments) ClearRevertEntries() {
	s.revertEntries = s.revertEntries[:0]
}

// MutableCachedLattice returns the one lattice instance retained across
// conversions to amortize allocation. The container never interprets it.
func (s *Segments) MutableCachedLattice() *lattice.Lattice {
	return &s.cachedLattice
}

// Clone returns a deep, structurally equal but pointer-distinct copy:
// every segment is rebuilt in the copy's own pool, the revert journal is
// copied, and the cached lattice is value-copied. Segment handles from s
// are not valid in the result.
func (s *Segments) Clone() *Segments {
	out := New()
	out.maxHistorySegmentsSize = s.maxHistorySegmentsSize
	out.resized = s.resized
	out.cachedLattice = s.cachedLattice.Clone()
	out.revertEntries = append([]RevertEntry(nil), s.revertEntries...)
	for _, src := range s.segments {
		dst := out.PushBackSegment()
		dst.CopyFrom(src)
	}
	return out
}
