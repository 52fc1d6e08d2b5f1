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

	"gopkg.in/yaml.v3"

	"github.com/haruna-ime/convcore/pkg/validation"
	"github.com/haruna-ime/convcore/services/converter/segments"
)

// fixtureFile is a debug-only YAML serialization of a Segments snapshot,
// used by segviz to load and save example conversion states for
// inspection and manual test authoring. It is not the wire format the
// core's Non-goals exclude: nothing in services/converter/segments reads
// or writes this shape.
type fixtureFile struct {
	MaxHistorySegments uint                `yaml:"max_history_segments"`
	Resized            bool                `yaml:"resized"`
	Segments           []fixtureSegment    `yaml:"segments"`
	RevertEntries      []fixtureRevertEntry `yaml:"revert_entries"`
}

type fixtureSegment struct {
	Type            string              `yaml:"type"`
	Key             string              `yaml:"key"`
	Candidates      []fixtureCandidate  `yaml:"candidates"`
	MetaCandidates  []fixtureCandidate  `yaml:"meta_candidates"`
}

type fixtureCandidate struct {
	Value string `yaml:"value"`
	Key   string `yaml:"key"`
	Cost  int32  `yaml:"cost"`
}

type fixtureRevertEntry struct {
	ID        uint16 `yaml:"id"`
	Timestamp uint32 `yaml:"timestamp"`
	Key       string `yaml:"key"`
}

var segmentTypeNames = map[string]segments.SegmentType{
	"FREE":            segments.SegmentFree,
	"FIXED_BOUNDARY":  segments.SegmentFixedBoundary,
	"FIXED_VALUE":     segments.SegmentFixedValue,
	"SUBMITTED":       segments.SegmentSubmitted,
	"HISTORY":         segments.SegmentHistory,
}

func segmentTypeName(t segments.SegmentType) string {
	for name, v := range segmentTypeNames {
		if v == t {
			return name
		}
	}
	return "FREE"
}

// LoadFixture reads a *.segments.yaml file and builds a Segments container
// from it.
func LoadFixture(path string) (*segments.Segments, error) {
	if err := validation.ValidateFixturePath(path); err != nil {
		return nil, fmt.Errorf("invalid fixture path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %q: %w", path, err)
	}

	var ff fixtureFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("parsing fixture %q: %w", path, err)
	}

	s := segments.New()
	s.SetMaxHistorySegmentsSize(ff.MaxHistorySegments)
	s.SetResized(ff.Resized)

	for _, fs := range ff.Segments {
		seg := s.PushBackSegment()
		t, ok := segmentTypeNames[fs.Type]
		if !ok {
			return nil, fmt.Errorf("fixture %q: unknown segment type %q", path, fs.Type)
		}
		seg.SetSegmentType(t)
		seg.SetKey(fs.Key)
		for _, fc := range fs.Candidates {
			c := seg.PushBackCandidate()
			c.Value = fc.Value
			c.Key = fc.Key
			c.Cost = fc.Cost
		}
		for _, fc := range fs.MetaCandidates {
			c := seg.AddMetaCandidate()
			c.Value = fc.Value
			c.Key = fc.Key
			c.Cost = fc.Cost
		}
	}

	for _, fe := range ff.RevertEntries {
		e := s.PushBackRevertEntry()
		e.ID = fe.ID
		e.Timestamp = fe.Timestamp
		e.Key = fe.Key
		revertEntriesAppended.Inc()
	}

	return s, nil
}

// SaveFixture writes s to path in the same fixture shape LoadFixture reads.
func SaveFixture(path string, s *segments.Segments) error {
	if err := validation.ValidateFixturePath(path); err != nil {
		return fmt.Errorf("invalid fixture path: %w", err)
	}

	ff := fixtureFile{
		MaxHistorySegments: s.MaxHistorySegmentsSize(),
		Resized:            s.Resized(),
	}

	all := s.All()
	for i := 0; i < all.Size(); i++ {
		seg := all.At(i)
		fs := fixtureSegment{
			Type: segmentTypeName(seg.SegmentType()),
			Key:  seg.Key(),
		}
		for j := 0; j < seg.CandidatesSize(); j++ {
			c := seg.Candidate(j)
			fs.Candidates = append(fs.Candidates, fixtureCandidate{Value: c.Value, Key: c.Key, Cost: c.Cost})
		}
		for j := 0; j < seg.MetaCandidatesSize(); j++ {
			c := seg.MetaCandidate(j)
			fs.MetaCandidates = append(fs.MetaCandidates, fixtureCandidate{Value: c.Value, Key: c.Key, Cost: c.Cost})
		}
		ff.Segments = append(ff.Segments, fs)
	}

	for i := 0; i < s.RevertEntriesSize(); i++ {
		e := s.RevertEntry(i)
		ff.RevertEntries = append(ff.RevertEntries, fixtureRevertEntry{ID: e.ID, Timestamp: e.Timestamp, Key: e.Key})
	}

	data, err := yaml.Marshal(ff)
	if err != nil {
		return fmt.Errorf("encoding fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing fixture %q: %w", path, err)
	}
	return nil
}
