// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lanegen generates the per-backend aliases and constructors of the
// valarray package.
//
// Usage:
//
//	lanegen -output backends_gen.go
//	lanegen -output backends_gen.go -targets scalar,sse2
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/lanegen -output backends_gen.go
//
// For every target it emits an Array and a Representation alias plus New,
// Filled and FromSlice constructors, so callers do not have to spell out
// the lane type and backend type arguments.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputFile = flag.String("output", "backends_gen.go", "Output file")
	packageOut = flag.String("pkg", "valarray", "Output package name")
	targets    = flag.String("targets", "all", "Comma-separated targets ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	targetList, err := parseTargets(*targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := Generate(*packageOut, targetList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	names := make([]string, len(targetList))
	for i, t := range targetList {
		names[i] = t.Name
	}
	fmt.Printf("Successfully generated %s for targets: %s\n", *outputFile, strings.Join(names, ", "))
}

func parseTargets(s string) ([]Target, error) {
	var result []Target
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "all" {
			return AllTargets(), nil
		}
		t, ok := GetTarget(p)
		if !ok {
			return nil, fmt.Errorf("unknown target %q", p)
		}
		result = append(result, t)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no valid targets specified")
	}
	return result, nil
}
