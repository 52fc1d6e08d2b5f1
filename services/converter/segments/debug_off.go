// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

//go:build !segments_debug

package segments

// candidateDebug is empty in release builds: the debug log field compiles
// out entirely rather than merely going unwritten.
type candidateDebug struct{}

// Dlog is a no-op in release builds.
func (c *Candidate) Dlog(string) {}

// Log always returns the empty string in release builds.
func (c *Candidate) Log() string { return "" }

func (d *candidateDebug) clear() {}
