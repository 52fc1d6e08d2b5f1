// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package lattice holds the Viterbi search graph used by real-time
// conversion.
//
// The graph's construction and traversal belong to the converter, not to
// this module: a Segments container only needs one long-lived instance to
// amortize allocation across conversions. Lattice is therefore kept as a
// small, opaque, default-constructible, copyable value — everything a
// caller holding a *Lattice needs, and nothing this module interprets.
package lattice

// Lattice is an opaque, owned resource cached by a Segments container.
//
// The zero value is ready to use. Copying a Lattice copies its internal
// state (a generation counter); callers that find copying expensive may prefer to
// re-derive a fresh Lattice instead, since nothing outside the converter
// inspects its contents.
type Lattice struct {
	// generation increments on Reset, giving external converters a cheap
	// way to notice that cached node/edge state should be rebuilt without
	// this package having to know what that state is.
	generation uint64
}

// Reset invalidates any state the owning converter had cached in this
// Lattice, without releasing the underlying allocation.
func (l *Lattice) Reset() {
	l.generation++
}

// Generation returns the number of times Reset has been called.
func (l *Lattice) Generation() uint64 {
	return l.generation
}

// Clone returns a value-independent copy of l.
func (l Lattice) Clone() Lattice {
	return Lattice{generation: l.generation}
}
