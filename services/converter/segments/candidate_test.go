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

func TestEncodeLengths_RoundTrip(t *testing.T) {
	code, ok := EncodeLengths(3, 7, 1, 2)
	require.True(t, ok)
	kl, vl, ckl, cvl := code.Decode()
	assert.Equal(t, 3, kl)
	assert.Equal(t, 7, vl)
	assert.Equal(t, 1, ckl)
	assert.Equal(t, 2, cvl)
}

func TestEncodeLengths_Overflow(t *testing.T) {
	tests := []struct {
		name                                         string
		kl, vl, ckl, cvl                             int
	}{
		{"key overflow", 256, 0, 0, 0},
		{"value overflow", 0, 300, 0, 0},
		{"content key overflow", 0, 0, 999, 0},
		{"content value overflow", 0, 0, 0, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := EncodeLengths(tt.kl, tt.vl, tt.ckl, tt.cvl)
			assert.False(t, ok)
		})
	}
}

func TestCandidate_PushBackInnerSegmentBoundary_LeavesSequenceUnchangedOnOverflow(t *testing.T) {
	var c Candidate
	ok := c.PushBackInnerSegmentBoundary(3, 3, 3, 3)
	require.True(t, ok)
	require.Equal(t, 1, c.InnerSegmentBoundarySize())

	ok = c.PushBackInnerSegmentBoundary(256, 1, 1, 1)
	assert.False(t, ok)
	assert.Equal(t, 1, c.InnerSegmentBoundarySize())
}

func TestCandidate_FunctionalKeyValue(t *testing.T) {
	c := Candidate{Key: "くるまのほうが", ContentKey: "くるま", Value: "車のほうが", ContentValue: "車"}
	assert.Equal(t, "のほうが", c.FunctionalKey())
	assert.Equal(t, "のほうが", c.FunctionalValue())
}

func TestCandidate_FunctionalKey_EmptyWhenContentKeyLonger(t *testing.T) {
	c := Candidate{Key: "ab", ContentKey: "abcdef"}
	assert.Equal(t, "", c.FunctionalKey())
}

func TestCandidate_IsValid(t *testing.T) {
	c := Candidate{Key: "くるまのほうが", Value: "車のほうが"}
	assert.True(t, c.IsValid(), "empty boundary is always valid")

	ok := c.PushBackInnerSegmentBoundary(len("くるま"), len("車"), len("くるま"), len("車"))
	require.True(t, ok)
	ok = c.PushBackInnerSegmentBoundary(len("のほうが"), len("のほうが"), len("のほうが"), len("のほうが"))
	require.True(t, ok)
	assert.True(t, c.IsValid())

	c.Value = "車"
	assert.False(t, c.IsValid())
}

func TestCandidate_Validate(t *testing.T) {
	c := Candidate{Key: "ab", Value: "cd"}
	assert.NoError(t, c.Validate())

	ok := c.PushBackInnerSegmentBoundary(1, 1, 1, 1)
	require.True(t, ok)
	assert.Error(t, c.Validate())
}

func TestCandidate_Clear(t *testing.T) {
	c := Candidate{Key: "a", Value: "b", Cost: 10, Category: CategorySymbol, Attributes: BestCandidate}
	ok := c.PushBackInnerSegmentBoundary(1, 1, 0, 0)
	require.True(t, ok)

	c.Clear()
	assert.Equal(t, "", c.Key)
	assert.Equal(t, "", c.Value)
	assert.Equal(t, int32(0), c.Cost)
	assert.Equal(t, CategoryDefault, c.Category)
	assert.Equal(t, Attribute(0), c.Attributes)
	assert.Equal(t, 0, c.InnerSegmentBoundarySize())
}

func TestAttribute_NoLearningIsUnionOfBothBits(t *testing.T) {
	assert.True(t, NoLearning.Has(NoHistoryLearning))
	assert.True(t, NoLearning.Has(NoSuggestLearning))
}

func TestInnerSegmentIterator(t *testing.T) {
	c := Candidate{Key: "くるまのほうが", Value: "車のほうが"}
	ok := c.PushBackInnerSegmentBoundary(len("くるま"), len("車"), len("くるま"), len("車"))
	require.True(t, ok)
	ok = c.PushBackInnerSegmentBoundary(len("のほうが"), len("のほうが"), len("のほうが"), len("のほうが"))
	require.True(t, ok)

	it := c.InnerSegmentIterator()

	require.False(t, it.Done())
	first := it.Next()
	assert.Equal(t, "くるま", first.Key)
	assert.Equal(t, "車", first.Value)

	require.False(t, it.Done())
	second := it.Next()
	assert.Equal(t, "のほうが", second.Key)
	assert.Equal(t, "のほうが", second.Value)

	assert.True(t, it.Done())
	assert.Equal(t, c.Key, first.Key+second.Key)
	assert.Equal(t, c.Value, first.Value+second.Value)
}

func TestCandidate_InnerSegmentBoundaryAt_OutOfRangePanics(t *testing.T) {
	var c Candidate
	assert.Panics(t, func() {
		c.InnerSegmentBoundaryAt(0)
	})
}
