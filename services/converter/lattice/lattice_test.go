// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLattice_ZeroValueIsReady(t *testing.T) {
	var l Lattice
	assert.Equal(t, uint64(0), l.Generation())
}

func TestLattice_ResetIncrementsGeneration(t *testing.T) {
	var l Lattice
	l.Reset()
	l.Reset()
	assert.Equal(t, uint64(2), l.Generation())
}

func TestLattice_CloneCopiesGeneration(t *testing.T) {
	var l Lattice
	l.Reset()
	clone := l.Clone()
	assert.Equal(t, l.Generation(), clone.Generation())

	clone.Reset()
	assert.NotEqual(t, l.Generation(), clone.Generation(), "clone must be value-independent")
}
