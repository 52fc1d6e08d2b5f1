// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/haruna-ime/convcore/pkg/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dir>",
	Short: "Validate every *.segments.yaml fixture in a directory concurrently",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, span := tracer().Start(cmd.Context(), "segviz.validate")
	defer span.End()

	paths, err := filepath.Glob(filepath.Join(args[0], "*.segments.yaml"))
	if err != nil {
		return err
	}
	if err := validation.ValidateFixturePaths(paths); err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	results := make([]error, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = validateFixtureFile(path)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, err := range results {
		if err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", paths[i], err)
		} else {
			fmt.Printf("ok   %s\n", paths[i])
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d fixtures failed validation", failed, len(paths))
	}
	logger.Info("validated fixtures", "dir", args[0], "count", len(paths))
	return nil
}

// validateFixtureFile loads one fixture and checks every candidate's inner
// segment boundary invariant.
func validateFixtureFile(path string) error {
	s, err := LoadFixture(path)
	if err != nil {
		return err
	}
	all := s.All()
	for i := 0; i < all.Size(); i++ {
		seg := all.At(i)
		for j := 0; j < seg.CandidatesSize(); j++ {
			if err := seg.Candidate(j).Validate(); err != nil {
				return fmt.Errorf("segment %d candidate %d: %w", i, j, err)
			}
		}
	}
	return nil
}
