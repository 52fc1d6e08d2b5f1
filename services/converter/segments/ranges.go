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

// Range is a half-open, random-access, bounds-checked view over a backing
// slice. It replaces the original's Iterator<InnerIterator,is_const> and
// Range<Iterator> templates: Go has no iterator templates, so a Range
// simply closes over the backing slice and a [lo, hi) window instead of
// parameterizing over an iterator type.
type Range[T any] struct {
	backing []T
	lo, hi  int
}

// newRange returns a Range over the whole of backing.
func newRange[T any](backing []T) Range[T] {
	return Range[T]{backing: backing, lo: 0, hi: len(backing)}
}

// Size returns the number of elements in the range.
func (r Range[T]) Size() int { return r.hi - r.lo }

// Empty reports whether the range has no elements.
func (r Range[T]) Empty() bool { return r.hi == r.lo }

// At returns the i-th element of the range. Bounds-checked: out-of-range i
// is a programmer error.
func (r Range[T]) At(i int) T {
	invariantf("Range.At", i >= 0 && i < r.Size(), "index %d out of range [0,%d)", i, r.Size())
	return r.backing[r.lo+i]
}

// Front returns the first element. The range must be non-empty.
func (r Range[T]) Front() T {
	invariantf("Range.Front", !r.Empty(), "front of empty range")
	return r.backing[r.lo]
}

// Back returns the last element. The range must be non-empty.
func (r Range[T]) Back() T {
	invariantf("Range.Back", !r.Empty(), "back of empty range")
	return r.backing[r.hi-1]
}

// Drop returns a range with the first n elements removed. n is clamped to
// Size().
func (r Range[T]) Drop(n int) Range[T] {
	invariantf("Range.Drop", n >= 0, "negative count %d", n)
	if n > r.Size() {
		n = r.Size()
	}
	return Range[T]{backing: r.backing, lo: r.lo + n, hi: r.hi}
}

// Take returns a range containing only the first n elements. n is clamped
// to Size().
func (r Range[T]) Take(n int) Range[T] {
	invariantf("Range.Take", n >= 0, "negative count %d", n)
	if n > r.Size() {
		n = r.Size()
	}
	return Range[T]{backing: r.backing, lo: r.lo, hi: r.lo + n}
}

// TakeLast returns a range containing only the last n elements. n is
// clamped to Size().
func (r Range[T]) TakeLast(n int) Range[T] {
	invariantf("Range.TakeLast", n >= 0, "negative count %d", n)
	if n > r.Size() {
		n = r.Size()
	}
	return Range[T]{backing: r.backing, lo: r.hi - n, hi: r.hi}
}

// Subrange returns the range of n elements starting at i. Equivalent to
// Drop(i).Take(n): i and n are each clamped to Size() rather than rejected,
// matching the original's subrange(index, size) = drop(index).take(size).
func (r Range[T]) Subrange(i, n int) Range[T] {
	invariantf("Range.Subrange", i >= 0, "negative index %d", i)
	invariantf("Range.Subrange", n >= 0, "negative count %d", n)
	return r.Drop(i).Take(n)
}

// Slice materializes the range's elements into a new slice.
func (r Range[T]) Slice() []T {
	out := make([]T, r.Size())
	copy(out, r.backing[r.lo:r.hi])
	return out
}
