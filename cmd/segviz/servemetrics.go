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
	"github.com/spf13/cobra"
)

var serveMetricsCmd = &cobra.Command{
	Use:   "serve-metrics [fixture.yaml]",
	Short: "Serve Prometheus gauges for a fixture's pool high-water marks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runServeMetrics,
}

func runServeMetrics(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		s, err := LoadFixture(args[0])
		if err != nil {
			return err
		}
		recordPoolMetrics(s)
	}

	logger.Info("serving metrics", "addr", config.PrometheusAddr)
	return serveMetrics(config.PrometheusAddr)
}
