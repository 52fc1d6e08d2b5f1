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
)

// Config is segviz's own small YAML configuration, loaded once at startup.
// It configures the CLI's ambient concerns only; the segments container it
// inspects takes no configuration of its own beyond SetMaxHistorySegmentsSize.
type Config struct {
	LogLevel            string `yaml:"log_level"`
	PrometheusAddr      string `yaml:"prometheus_addr"`
	MaxHistorySegments  uint   `yaml:"max_history_segments"`
}

// DefaultConfig returns the configuration used when no config file is
// given or found.
func DefaultConfig() Config {
	return Config{
		LogLevel:           "info",
		PrometheusAddr:     ":9108",
		MaxHistorySegments: 32,
	}
}

// LoadConfig reads a YAML config file at path. A missing file is not an
// error: segviz falls back to DefaultConfig(), matching a developer tool's
// expectation of zero required setup.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}
