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
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/haruna-ime/convcore/services/converter/segments"
)

var newCandidateCmd = &cobra.Command{
	Use:   "new-candidate <fixture.yaml> <segment-index>",
	Short: "Interactively build a candidate and append it to a fixture segment",
	Args:  cobra.ExactArgs(2),
	RunE:  runNewCandidate,
}

func runNewCandidate(cmd *cobra.Command, args []string) error {
	_, span := tracer().Start(cmd.Context(), "segviz.new_candidate")
	defer span.End()

	segIndex, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("segment index %q: %w", args[1], err)
	}

	s, err := LoadFixture(args[0])
	if err != nil {
		return err
	}
	if segIndex < 0 || segIndex >= s.SegmentsSize() {
		return fmt.Errorf("segment index %d out of range [0,%d)", segIndex, s.SegmentsSize())
	}

	var key, value, costStr string
	var reranked bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Reading key").Value(&key),
			huh.NewInput().Title("Surface value").Value(&value),
			huh.NewInput().Title("Cost").Value(&costStr).Placeholder("0"),
			huh.NewConfirm().Title("Mark RERANKED?").Value(&reranked),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("candidate form: %w", err)
	}

	cost, err := strconv.ParseInt(costStr, 10, 32)
	if err != nil && costStr != "" {
		return fmt.Errorf("cost %q: %w", costStr, err)
	}

	seg := s.Segment(segIndex)
	c := seg.PushBackCandidate()
	c.Key = key
	c.Value = value
	c.Cost = int32(cost)
	if reranked {
		c.Attributes |= segments.Reranked
	}

	if err := SaveFixture(args[0], s); err != nil {
		return err
	}
	logger.Info("appended candidate", "path", args[0], "segment", segIndex, "value", value)
	return nil
}
