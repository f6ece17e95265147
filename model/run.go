package model

import "time"

// RunResultSet holds every record produced by one full run across all
// configured browsers and test files. It is populated by the collector,
// finalized once, and read-only afterwards.
type RunResultSet struct {
	// Unique ID for this run
	RunID string `json:"run_id,omitempty"`
	// Timestamp when the run finished
	Timestamp time.Time `json:"timestamp"`
	// Wall-clock duration of the whole run in seconds
	TotalDuration float64 `json:"total_duration"`
	// Browser identifier -> version string ("Unknown" when the probe failed)
	BrowserVersions map[string]string `json:"browser_versions"`
	// Records in execution order: browsers outermost, then test files,
	// then test cases as discovered
	Records []Record `json:"results"`
	// Command-line arguments of the invocation
	Args []string `json:"args,omitempty"`
	// Whether browsers ran headless
	Headless bool `json:"headless,omitempty"`
}
