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
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/haruna-ime/convcore/services/converter/segments"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <fixture.yaml>",
	Short: "Interactively browse a loaded Segments snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := LoadFixture(args[0])
	if err != nil {
		return err
	}
	model := newSnapshotModel(s)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// snapshotModel is a read-only bubbletea viewer over a loaded Segments
// snapshot: left/right moves between segments, up/down moves between that
// segment's candidates. It never mutates the snapshot.
type snapshotModel struct {
	s            *segments.Segments
	segmentIndex int
	candIndex    int
	viewport     viewport.Model
	ready        bool
	width        int
	height       int
}

func newSnapshotModel(s *segments.Segments) snapshotModel {
	return snapshotModel{s: s}
}

func (m snapshotModel) Init() tea.Cmd { return nil }

func (m snapshotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}
		m.viewport.SetContent(m.render())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.segmentIndex > 0 {
				m.segmentIndex--
				m.candIndex = 0
			}
		case "right", "l":
			if m.segmentIndex < m.s.SegmentsSize()-1 {
				m.segmentIndex++
				m.candIndex = 0
			}
		case "up", "k":
			if m.candIndex > 0 {
				m.candIndex--
			}
		case "down", "j":
			if seg := m.currentSegment(); seg != nil && m.candIndex < seg.CandidatesSize()-1 {
				m.candIndex++
			}
		}
		if m.ready {
			m.viewport.SetContent(m.render())
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m snapshotModel) View() string {
	if !m.ready {
		return "loading...\n"
	}
	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("←/→ segment  ↑/↓ candidate  q quit")
	return m.viewport.View() + "\n" + help
}

func (m snapshotModel) currentSegment() *segments.Segment {
	if m.s.SegmentsSize() == 0 {
		return nil
	}
	return m.s.Segment(m.segmentIndex)
}

func (m snapshotModel) render() string {
	if m.s.SegmentsSize() == 0 {
		return "(empty snapshot)"
	}

	var b strings.Builder
	hs := m.s.HistorySegmentsSize()
	for i := 0; i < m.s.SegmentsSize(); i++ {
		seg := m.s.Segment(i)
		label := fmt.Sprintf("segment[%d] type=%d key=%q", i, seg.SegmentType(), seg.Key())
		if i < hs {
			label = historyStyle.Render(label)
		} else {
			label = conversionStyle.Render(label)
		}
		if i == m.segmentIndex {
			label = lipgloss.NewStyle().Bold(true).Underline(true).Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		if i == m.segmentIndex {
			for j := 0; j < seg.CandidatesSize(); j++ {
				c := seg.Candidate(j)
				line := fmt.Sprintf("  [%d] %s", j, c.DebugString())
				if j == m.candIndex {
					line = lipgloss.NewStyle().Reverse(true).Render(line)
				}
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}

	b.WriteString(fmt.Sprintf("\nrevert entries: %d\n", m.s.RevertEntriesSize()))
	return b.String()
}
