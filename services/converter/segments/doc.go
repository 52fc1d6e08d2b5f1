// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package segments holds the in-memory conversion state for a kana-to-kanji
// input method: the Candidate, Segment, and Segments types that the
// composer, converter, rewriters, predictor, and renderer all read and
// mutate during a conversion session.
//
// The package is single-threaded and performs no I/O. Callers wanting
// concurrent access must serialize it externally (a session mutex);
// nothing here takes a lock.
//
// Older call sites may look for a lowercase clear() alongside Clear() on
// Segment/Segments — that duplication existed upstream for source
// compatibility with pre-Go call sites and has no idiomatic Go analogue;
// this package keeps a single Clear method on each type.
package segments
