package model

// Status is the outcome of a single test execution.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusUnknown Status = "unknown"
)

// AllTests is the sentinel test name used for suite-level roll-up records
// when no per-case data is available.
const AllTests = "all_tests"

// Record describes one (browser, test) outcome.
// Browser and TestFile are always set; ErrorKind and ErrorMessage are only
// set for failed records (and, for ErrorMessage, skipped-with-reason records).
type Record struct {
	// Browser identifier (e.g. "chrome", "firefox")
	Browser string `json:"browser"`
	// Suite name, derived from the test file path stem
	TestFile string `json:"test_file"`
	// Individual test case name, or AllTests for roll-up records
	TestName string `json:"test_name"`
	// Duration in seconds; nil when unknown
	Duration *float64 `json:"duration"`
	// Outcome of the execution
	Status Status `json:"status"`
	// Short error classifier (e.g. "AssertionError"), failed records only
	ErrorKind string `json:"error_kind,omitempty"`
	// Free-text error or skip reason
	ErrorMessage string `json:"error_message,omitempty"`
}

// Seconds returns a Duration pointer for d, for building records inline.
func Seconds(d float64) *float64 {
	return &d
}
