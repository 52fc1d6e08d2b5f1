// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for security-critical operations.
//
// This package contains validators for user-provided inputs that are used in
// file paths or subprocess calls. Using these validators prevents injection
// attacks (command injection, path traversal).
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// fixtureExt is the only extension segviz will load a snapshot from.
const fixtureExt = ".yaml"

// ValidateFixturePath validates a user-supplied path to a segments fixture
// file before it is opened.
//
// Valid paths:
//   - Non-empty
//   - Do not contain a ".." path-traversal component
//   - End in ".yaml"
//
// Returns an error if the path is invalid.
//
// Example:
//
//	if err := validation.ValidateFixturePath(path); err != nil {
//	    return fmt.Errorf("invalid fixture path: %w", err)
//	}
//	// Safe to pass to os.Open
func ValidateFixturePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("fixture path cannot be empty")
	}

	cleaned := filepath.Clean(path)
	for _, part := range strings.Split(cleaned, string(filepath.Separator)) {
		if part == ".." {
			return fmt.Errorf("fixture path must not contain %q: %q", "..", path)
		}
	}

	if filepath.Ext(cleaned) != fixtureExt {
		return fmt.Errorf("fixture path must end in %q: %q", fixtureExt, path)
	}

	return nil
}

// ValidateFixturePaths validates multiple fixture paths.
// Returns an error listing all invalid paths if any fail validation.
func ValidateFixturePaths(paths []string) error {
	var invalid []string
	for _, p := range paths {
		if err := ValidateFixturePath(p); err != nil {
			invalid = append(invalid, p)
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid fixture paths: %v", invalid)
	}
	return nil
}
