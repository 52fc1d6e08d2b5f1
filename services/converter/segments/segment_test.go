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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_PushBackCandidate_ThenPopRestoresSize(t *testing.T) {
	seg := NewSegment()
	c1 := seg.PushBackCandidate()
	c1.Value = "one"
	c2 := seg.PushBackCandidate()
	c2.Value = "two"
	require.Equal(t, 2, seg.CandidatesSize())

	seg.PopBackCandidate()
	assert.Equal(t, 1, seg.CandidatesSize())

	c3 := seg.PushBackCandidate()
	assert.Equal(t, "", c3.Value, "reused pool slot comes back zero-valued")
}

func TestSegment_InsertCandidate_OnEmptySegmentEqualsPushBack(t *testing.T) {
	seg := NewSegment()
	c := seg.InsertCandidate(0)
	c.Value = "x"
	require.Equal(t, 1, seg.CandidatesSize())
	assert.Equal(t, "x", seg.Candidate(0).Value)
}

func TestSegment_SignedIndexAccess(t *testing.T) {
	seg := NewSegment()
	for i := 0; i < 3; i++ {
		c := seg.PushBackCandidate()
		c.Value = string(rune('a' + i))
	}
	seg.AddMetaCandidate().Value = "m0"
	seg.AddMetaCandidate().Value = "m1"

	assert.Equal(t, "a", seg.Candidate(0).Value)
	assert.Equal(t, "m0", seg.Candidate(-1).Value)
	assert.Equal(t, "m1", seg.Candidate(-2).Value)

	assert.False(t, seg.IsValidIndex(-3))
	assert.False(t, seg.IsValidIndex(3))
	assert.True(t, seg.IsValidIndex(2))
	assert.True(t, seg.IsValidIndex(-2))
}

func TestSegment_MoveCandidate_PreservesHandleIdentity(t *testing.T) {
	seg := NewSegment()
	var handles [3]*Candidate
	for i := 0; i < 3; i++ {
		handles[i] = seg.PushBackCandidate()
		handles[i].Value = string(rune('a' + i))
	}

	target := seg.Candidate(2)
	seg.MoveCandidate(2, 0)

	assert.Same(t, target, seg.Candidate(0))
	assert.Equal(t, 3, seg.CandidatesSize())
	assert.Equal(t, "c", seg.Candidate(0).Value)
	assert.Equal(t, "a", seg.Candidate(1).Value)
	assert.Equal(t, "b", seg.Candidate(2).Value)
}

func TestSegment_MoveCandidate_NoOpWhenSameIndex(t *testing.T) {
	seg := NewSegment()
	seg.PushBackCandidate().Value = "a"
	seg.PushBackCandidate().Value = "b"

	before := seg.Candidate(1)
	seg.MoveCandidate(1, 1)
	assert.Same(t, before, seg.Candidate(1))
}

func TestSegment_EraseCandidate_OtherHandlesRemainValid(t *testing.T) {
	seg := NewSegment()
	seg.PushBackCandidate().Value = "a"
	keep := seg.PushBackCandidate()
	keep.Value = "b"
	seg.PushBackCandidate().Value = "c"

	seg.EraseCandidate(0)
	assert.Equal(t, 2, seg.CandidatesSize())
	assert.Same(t, keep, seg.Candidate(0))
	assert.Equal(t, "b", seg.Candidate(0).Value)
}

func TestSegment_Clear_RetainsMetaCandidatesFalse(t *testing.T) {
	seg := NewSegment()
	seg.PushBackCandidate().Value = "a"
	seg.AddMetaCandidate().Value = "m"
	seg.SetSegmentType(SegmentHistory)
	seg.SetKey("key")

	seg.Clear()
	assert.Equal(t, 0, seg.CandidatesSize())
	assert.Equal(t, 0, seg.MetaCandidatesSize())
	assert.Equal(t, SegmentFree, seg.SegmentType())
	assert.Equal(t, "", seg.Key())
}

func TestSegment_ClearCandidates_RetainsMetaCandidates(t *testing.T) {
	seg := NewSegment()
	seg.PushBackCandidate()
	seg.AddMetaCandidate().Value = "m"

	seg.ClearCandidates()
	assert.Equal(t, 0, seg.CandidatesSize())
	assert.Equal(t, 1, seg.MetaCandidatesSize())
}

func TestSegment_CopyFrom_DeepCopiesWithDistinctHandles(t *testing.T) {
	src := NewSegment()
	src.SetKey("k")
	src.SetSegmentType(SegmentFixedValue)
	src.PushBackCandidate().Value = "v"

	dst := NewSegment()
	dst.CopyFrom(src)

	assert.Equal(t, src.Key(), dst.Key())
	assert.Equal(t, src.SegmentType(), dst.SegmentType())
	require.Equal(t, src.CandidatesSize(), dst.CandidatesSize())
	assert.Equal(t, src.Candidate(0).Value, dst.Candidate(0).Value)
	assert.NotSame(t, src.Candidate(0), dst.Candidate(0))
}

func TestSegment_RemovedCandidatesForDebug_NotAutoPopulated(t *testing.T) {
	seg := NewSegment()
	seg.PushBackCandidate().Value = "a"
	seg.EraseCandidate(0)

	assert.Empty(t, seg.RemovedCandidatesForDebug(), "erase does not auto-populate the debug scratch slice")

	seg.AppendRemovedCandidateForDebug(Candidate{Value: "a"})
	assert.Len(t, seg.RemovedCandidatesForDebug(), 1)
}

func TestSegment_InsertCandidates_Bulk(t *testing.T) {
	seg := NewSegment()
	seg.PushBackCandidate().Value = "z"

	seg.InsertCandidates(0, []Candidate{{Value: "x"}, {Value: "y"}})

	require.Equal(t, 3, seg.CandidatesSize())
	assert.Equal(t, "x", seg.Candidate(0).Value)
	assert.Equal(t, "y", seg.Candidate(1).Value)
	assert.Equal(t, "z", seg.Candidate(2).Value)
}
