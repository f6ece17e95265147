package config

// This file contains the run configuration: which browsers to test,
// which test files to run, and execution options.

import (
	"encoding/json"
	"fmt"
	"os"
)

// Run is the test run configuration, stored as JSON
// (conventionally config/test_config.json).
type Run struct {
	// Browser identifiers to run against
	Browsers []string `json:"browsers"`
	// Test files to execute, one engine invocation per (browser, file) pair
	TestFiles []string `json:"test_files"`
	// Run engine invocations concurrently (consumed by surrounding tooling,
	// not by the pipeline itself)
	ParallelExecution bool `json:"parallel_execution"`
	// Run browsers headless
	Headless bool `json:"headless"`
	// Per-invocation timeout in seconds; 0 means no timeout
	Timeout int `json:"timeout"`
}

// DefaultRun returns the configuration written by `xbrowse init`.
func DefaultRun() *Run {
	return &Run{
		Browsers:  []string{"chrome", "firefox", "edge"},
		TestFiles: []string{"tests/"},
		Headless:  false,
		Timeout:   30,
	}
}

// Save writes the configuration to path as indented JSON.
func (r *Run) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run config: %w", err)
	}
	return nil
}

// LoadRun reads a run configuration from path.
func LoadRun(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run config: %w", err)
	}

	var cfg Run
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse run config %s: %w", path, err)
	}
	return &cfg, nil
}
