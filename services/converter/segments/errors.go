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
	"errors"
	"fmt"

	"github.com/haruna-ime/convcore/pkg/logging"
)

// Sentinel errors for the segments package.
var (
	// ErrOverflow describes an inner-segment boundary length that exceeds
	// 255 and cannot be packed into a single byte field. The codec itself
	// (EncodeLengths, PushBackInnerSegmentBoundary) reports overflow as a
	// false result and does not return this error.
	ErrOverflow = errors.New("inner segment boundary length exceeds 255")

	// ErrInvalidCandidate is returned by Candidate.Validate, the
	// non-panicking validity check used by batch tooling instead of
	// Candidate.IsValid's bare bool.
	ErrInvalidCandidate = errors.New("candidate inner segment boundary does not partition key/value")
)

// invariantLogger backs invariant/invariantf (and, in segments_debug builds,
// Candidate.Dlog) so a violated invariant is logged through the same
// pkg/logging path every other component in this module uses, rather than
// a bare panic string. Level is Debug, not the package's usual Info, so the
// debug-build candidate log also gets through this logger unfiltered.
var invariantLogger = logging.New(logging.Config{Level: logging.LevelDebug, Service: "segments"})

// InvariantError reports a violated programmer-error invariant: an
// out-of-range index, an empty-range front/back access, or a negative
// count. These are not recoverable; invariant/invariantf panic with one of
// these rather than a bare runtime error so a caller that recovers the
// panic can report which invariant failed.
type InvariantError struct {
	Op  string
	Err error
}

// Error returns the error message.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("segments: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// invariant logs the violation via invariantLogger, then panics with an
// *InvariantError, if cond is false.
func invariant(op string, cond bool, err error) {
	if !cond {
		invariantLogger.Error("invariant violated", "op", op, "error", err)
		panic(&InvariantError{Op: op, Err: err})
	}
}

// invariantf is like invariant but builds err from a format string.
func invariantf(op string, cond bool, format string, args ...any) {
	if !cond {
		err := fmt.Errorf(format, args...)
		invariantLogger.Error("invariant violated", "op", op, "error", err)
		panic(&InvariantError{Op: op, Err: err})
	}
}
