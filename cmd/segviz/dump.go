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
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/haruna-ime/convcore/services/converter/segments"
)

var (
	historyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	conversionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	candidateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

var dumpCmd = &cobra.Command{
	Use:   "dump <fixture.yaml>",
	Short: "Print every segment and candidate in a fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	_, span := tracer().Start(cmd.Context(), "segviz.dump")
	defer span.End()

	s, err := LoadFixture(args[0])
	if err != nil {
		return err
	}
	recordPoolMetrics(s)

	colorize := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	hs := s.HistorySegmentsSize()
	all := s.All()
	for i := 0; i < all.Size(); i++ {
		seg := all.At(i)
		dumpSegment(i, seg, i < hs, colorize)
	}

	logger.Info("dumped segments fixture", "path", args[0], "segments", s.SegmentsSize())
	return nil
}

func dumpSegment(i int, seg *segments.Segment, isHistory, colorize bool) {
	header := fmt.Sprintf("segment[%d] type=%d key=%q", i, seg.SegmentType(), seg.Key())
	if colorize {
		if isHistory {
			header = historyStyle.Render(header)
		} else {
			header = conversionStyle.Render(header)
		}
	}
	fmt.Println(header)

	for j := 0; j < seg.CandidatesSize(); j++ {
		c := seg.Candidate(j)
		line := fmt.Sprintf("  candidate[%d] %s", j, c.DebugString())
		if colorize {
			line = candidateStyle.Render(line)
		}
		fmt.Println(line)
	}
	for j := 0; j < seg.MetaCandidatesSize(); j++ {
		c := seg.MetaCandidate(j)
		fmt.Printf("  meta[%d] %s\n", j, c.DebugString())
	}
}
