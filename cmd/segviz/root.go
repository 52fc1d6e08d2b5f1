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
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/haruna-ime/convcore/pkg/logging"
)

var (
	configPath string
	sessionID  string
	config     Config
	logger     *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "segviz",
		Short: "Inspect, validate, and build fixtures for a conversion segments snapshot",
		Long: `segviz is a developer tool for the services/converter/segments container:
it loads a *.segments.yaml fixture and lets you dump, browse, validate, or
extend it without wiring up a full conversion engine.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			config = cfg

			sessionID = uuid.NewString()
			logger = logging.New(logging.Config{Level: levelFromString(config.LogLevel)})
			logger = logger.With("session_id", sessionID)
			return nil
		},
	}
)

func levelFromString(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "segviz.yaml", "path to segviz's own config file")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(newCandidateCmd)
	rootCmd.AddCommand(serveMetricsCmd)
}
