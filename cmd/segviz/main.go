// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command segviz is a developer inspector/debugger for a conversion
// segments snapshot: it loads a fixture, lets you dump or browse it, runs
// its candidates' validity checks in bulk, and can build new candidates
// interactively.
package main

import (
	"context"
	"log"
)

func main() {
	shutdown, err := initTracing()
	if err != nil {
		log.Fatalf("initializing tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("segviz: %v", err)
	}
}
