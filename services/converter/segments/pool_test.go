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

type poolItem struct {
	n int
}

func TestPool_HandlesAreStableAcrossGrowth(t *testing.T) {
	p := newPool[poolItem](2)

	var handles []*poolItem
	for i := 0; i < 10; i++ {
		h := p.alloc()
		h.n = i
		handles = append(handles, h)
	}

	for i, h := range handles {
		assert.Equal(t, i, h.n, "growing the arena must not move already-handed-out slots")
	}
}

func TestPool_ReleaseThenAllocReusesSlot(t *testing.T) {
	p := newPool[poolItem](4)
	a := p.alloc()
	a.n = 42
	p.release(a)

	b := p.alloc()
	assert.Equal(t, 0, b.n, "reused slot comes back zero-valued")
	assert.Equal(t, 1, p.liveCount())
}

func TestPool_LiveCount(t *testing.T) {
	p := newPool[poolItem](4)
	a := p.alloc()
	b := p.alloc()
	assert.Equal(t, 2, p.liveCount())
	p.release(a)
	assert.Equal(t, 1, p.liveCount())
	p.release(b)
	assert.Equal(t, 0, p.liveCount())
}
