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
)

func TestRange_DropTakeTakeLastSubrange(t *testing.T) {
	backing := []int{0, 1, 2, 3, 4}
	r := newRange(backing)

	assert.Equal(t, 5, r.Size())
	assert.Equal(t, []int{2, 3, 4}, r.Drop(2).Slice())
	assert.Equal(t, []int{0, 1}, r.Take(2).Slice())
	assert.Equal(t, []int{3, 4}, r.TakeLast(2).Slice())
	assert.Equal(t, []int{1, 2}, r.Subrange(1, 2).Slice())
}

func TestRange_DropTakeClampToSize(t *testing.T) {
	r := newRange([]int{0, 1})
	assert.Equal(t, 0, r.Drop(10).Size())
	assert.Equal(t, 2, r.Take(10).Size())
	assert.Equal(t, 2, r.TakeLast(10).Size())
}

func TestRange_SubrangeClampsToSize(t *testing.T) {
	backing := []int{0, 1, 2, 3, 4}
	r := newRange(backing)

	assert.Equal(t, []int{3, 4}, r.Subrange(3, 10).Slice())
	assert.Equal(t, []int{}, r.Subrange(10, 2).Slice())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, r.Subrange(0, 10).Slice())
}

func TestRange_FrontBackAt(t *testing.T) {
	r := newRange([]string{"a", "b", "c"})
	assert.Equal(t, "a", r.Front())
	assert.Equal(t, "c", r.Back())
	assert.Equal(t, "b", r.At(1))
}

func TestRange_EmptyFrontPanics(t *testing.T) {
	r := newRange([]int{})
	assert.Panics(t, func() { r.Front() })
	assert.Panics(t, func() { r.Back() })
}

func TestRange_OutOfBoundsAtPanics(t *testing.T) {
	r := newRange([]int{1, 2})
	assert.Panics(t, func() { r.At(2) })
	assert.Panics(t, func() { r.At(-1) })
}
