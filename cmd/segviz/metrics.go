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
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/haruna-ime/convcore/services/converter/segments"
)

var (
	segmentPoolLive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "segviz",
		Name:      "segment_pool_live",
		Help:      "Segments currently allocated from the loaded snapshot's segment pool.",
	})
	segmentPoolCapacity = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "segviz",
		Name:      "segment_pool_capacity",
		Help:      "Total segment slots ever allocated in the loaded snapshot's segment pool.",
	})
	candidatePoolLive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "segviz",
		Name:      "candidate_pool_live",
		Help:      "Candidates currently allocated from a segment's candidate pool.",
	}, []string{"segment_index"})
	revertEntriesAppended = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "segviz",
		Name:      "revert_entries_appended_total",
		Help:      "Revert entries appended by segviz commands in this process.",
	})
)

// recordPoolMetrics snapshots s's current segment-pool and per-segment
// candidate-pool live counts, and its segment-pool capacity, into the gauges
// above.
func recordPoolMetrics(s *segments.Segments) {
	segmentPoolLive.Set(float64(s.SegmentPoolLive()))
	segmentPoolCapacity.Set(float64(s.SegmentPoolCapacity()))

	all := s.All()
	for i := 0; i < all.Size(); i++ {
		seg := all.At(i)
		candidatePoolLive.WithLabelValues(strconv.Itoa(i)).Set(float64(seg.CandidatePoolLive()))
	}
}

// serveMetrics blocks serving Prometheus's /metrics endpoint on addr.
func serveMetrics(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
