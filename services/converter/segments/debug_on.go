// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

//go:build segments_debug

package segments

// candidateDebug carries the debug-only log field, present only in builds
// tagged segments_debug. Routed through pkg/logging rather than a bespoke
// macro when consumed by cmd/segviz.
type candidateDebug struct {
	log string
}

// Dlog appends msg to the candidate's debug log and emits it through
// invariantLogger (shared with invariant/invariantf) so debug-build candidate
// logging follows the same pkg/logging path as the rest of this package.
func (c *Candidate) Dlog(msg string) {
	invariantLogger.Debug("candidate debug log", "msg", msg)
	if c.log != "" {
		c.log += "; "
	}
	c.log += msg
}

// Log returns the accumulated debug log.
func (c *Candidate) Log() string {
	return c.log
}

func (d *candidateDebug) clear() {
	d.log = ""
}
