// Package runner drives the external test-execution engine across every
// configured (browser, test file) pair and normalizes its output into
// result records. Any fault confined to one pair degrades into a record
// for that pair; the run itself always completes.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xbrowse/xbrowse/browser"
	"github.com/xbrowse/xbrowse/config"
	"github.com/xbrowse/xbrowse/junit"
	"github.com/xbrowse/xbrowse/model"
)

// Probe reports browser availability and versions. *browser.Manager is the
// production implementation.
type Probe interface {
	Available() map[browser.Kind]bool
	Versions(kinds []browser.Kind) map[string]string
}

// Config holds everything a collector needs.
type Config struct {
	Logger zerolog.Logger
	Run    *config.Run
	Engine Engine
	Probe  Probe
	// TempDir receives the transient JUnit artifacts; defaults to the
	// system temp directory.
	TempDir string
	// Args are the process arguments, recorded into the result set.
	Args []string
}

// Collector produces one RunResultSet per invocation of Run.
type Collector struct {
	logger  zerolog.Logger
	cfg     *config.Run
	engine  Engine
	probe   Probe
	tempDir string
	args    []string
}

// NewCollector validates cfg and returns a collector.
func NewCollector(cfg Config) (*Collector, error) {
	if cfg.Run == nil {
		return nil, fmt.Errorf("run configuration is required")
	}
	if cfg.Engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if cfg.Probe == nil {
		return nil, fmt.Errorf("browser probe is required")
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	return &Collector{
		logger:  cfg.Logger,
		cfg:     cfg.Run,
		engine:  cfg.Engine,
		probe:   cfg.Probe,
		tempDir: cfg.TempDir,
		args:    cfg.Args,
	}, nil
}

// Run executes every configured (browser, test file) pair sequentially and
// returns the finalized result set. Each invocation contributes at least
// one record, so reports are never empty for an attempted browser.
func (c *Collector) Run(ctx context.Context) (*model.RunResultSet, error) {
	start := time.Now()

	available := c.probe.Available()

	var probeKinds []browser.Kind
	for _, k := range browser.Kinds {
		if available[k] {
			probeKinds = append(probeKinds, k)
		}
	}
	versions := c.probe.Versions(probeKinds)

	var records []model.Record
	for _, name := range c.cfg.Browsers {
		kind, err := browser.ParseKind(name)
		if err != nil {
			c.logger.Error().Err(err).Str("browser", name).Msg("Unsupported browser in configuration")
			for _, testFile := range c.cfg.TestFiles {
				records = append(records, model.Record{
					Browser:      name,
					TestFile:     suiteName(testFile),
					TestName:     model.AllTests,
					Status:       model.StatusFailed,
					ErrorKind:    "UnsupportedBrowser",
					ErrorMessage: err.Error(),
				})
			}
			continue
		}

		if !available[kind] {
			c.logger.Info().Str("browser", name).Msg("Skipping browser, not available")
			for _, testFile := range c.cfg.TestFiles {
				records = append(records, model.Record{
					Browser:      name,
					TestFile:     suiteName(testFile),
					TestName:     model.AllTests,
					Status:       model.StatusSkipped,
					ErrorMessage: fmt.Sprintf("%s browser not available", name),
				})
			}
			continue
		}

		c.logger.Info().Str("browser", name).Msg("Running tests")
		for _, testFile := range c.cfg.TestFiles {
			if _, err := os.Stat(testFile); err != nil {
				// Configuration error, not a test outcome: no record.
				c.logger.Warn().Str("test_file", testFile).Msg("Test file not found, skipping")
				continue
			}
			records = append(records, c.collectFile(ctx, kind, testFile)...)
		}
	}

	return &model.RunResultSet{
		RunID:           uuid.NewString(),
		Timestamp:       time.Now(),
		TotalDuration:   time.Since(start).Seconds(),
		BrowserVersions: versions,
		Records:         records,
		Args:            c.args,
		Headless:        c.cfg.Headless,
	}, nil
}

// collectFile runs the engine once for (kind, testFile) and returns the
// records for that invocation. The transient result artifact is removed on
// every exit path.
func (c *Collector) collectFile(ctx context.Context, kind browser.Kind, testFile string) []model.Record {
	suite := suiteName(testFile)

	artifact, err := os.CreateTemp(c.tempDir, "xbrowse-results-*.xml")
	if err != nil {
		return []model.Record{{
			Browser:      kind.String(),
			TestFile:     suite,
			TestName:     "test_execution",
			Status:       model.StatusFailed,
			ErrorKind:    "ExecutionError",
			ErrorMessage: fmt.Sprintf("failed to create result artifact: %v", err),
		}}
	}
	artifactPath := artifact.Name()
	artifact.Close()
	defer os.Remove(artifactPath)

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.Timeout)*time.Second)
		defer cancel()
	}

	out, err := c.engine.Run(ctx, Invocation{
		Browser:    kind,
		TestFile:   testFile,
		Headless:   c.cfg.Headless,
		ReportPath: artifactPath,
	})
	if err != nil {
		c.logger.Error().Err(err).
			Str("browser", kind.String()).
			Str("test_file", testFile).
			Msg("Engine invocation failed")
		return []model.Record{{
			Browser:      kind.String(),
			TestFile:     suite,
			TestName:     "test_execution",
			Status:       model.StatusFailed,
			ErrorKind:    faultKind(err),
			ErrorMessage: err.Error(),
		}}
	}

	records := c.parseArtifact(kind, suite, artifactPath, out)

	// Every invocation contributes at least one record so the aggregation
	// is never missing an attempted (browser, test file) pair.
	if len(records) == 0 {
		records = []model.Record{{
			Browser:      kind.String(),
			TestFile:     suite,
			TestName:     model.AllTests,
			Status:       model.StatusUnknown,
			ErrorMessage: "no test results captured",
		}}
	}
	return records
}

// parseArtifact applies the parsing policy: structured artifact first,
// console fallback second.
func (c *Collector) parseArtifact(kind browser.Kind, suite, artifactPath string, out *Output) []model.Record {
	data, err := os.ReadFile(artifactPath)
	if err != nil || len(data) == 0 {
		c.logger.Warn().
			Str("artifact", artifactPath).
			Str("browser", kind.String()).
			Msg("No result artifact, falling back to console output")
		return []model.Record{consoleFallback(kind, suite, out)}
	}

	doc, err := junit.Parse(data)
	if err != nil {
		c.logger.Error().Err(err).Str("browser", kind.String()).Msg("Failed to parse result artifact")
		return []model.Record{{
			Browser:      kind.String(),
			TestFile:     suite,
			TestName:     "result_parsing",
			Status:       model.StatusFailed,
			ErrorKind:    "ParseError",
			ErrorMessage: err.Error(),
		}}
	}

	if len(doc.Cases) > 0 {
		c.checkSuiteCounters(kind, suite, doc)
		records := make([]model.Record, 0, len(doc.Cases))
		for _, testCase := range doc.Cases {
			records = append(records, caseRecord(kind, suite, testCase))
		}
		return records
	}

	// Aggregate counters only: synthesize a single roll-up record.
	status := model.StatusPassed
	switch {
	case doc.Tests == 0:
		status = model.StatusSkipped
	case doc.Failures > 0 || doc.Errors > 0:
		status = model.StatusFailed
	}
	return []model.Record{{
		Browser:  kind.String(),
		TestFile: suite,
		TestName: model.AllTests,
		Duration: model.Seconds(doc.Time),
		Status:   status,
	}}
}

// caseRecord maps one testcase element to a record. When multiple markers
// are present, error and failure win over skip, skip wins over pass.
func caseRecord(kind browser.Kind, suite string, testCase junit.TestCase) model.Record {
	rec := model.Record{
		Browser:  kind.String(),
		TestFile: suite,
		TestName: testCase.Name,
		Duration: model.Seconds(testCase.Time),
		Status:   model.StatusPassed,
	}
	if rec.TestName == "" {
		rec.TestName = "unknown"
	}

	switch {
	case testCase.Error != nil:
		rec.Status = model.StatusFailed
		rec.ErrorKind = markerType(testCase.Error)
		rec.ErrorMessage = markerMessage(testCase.Error)
	case testCase.Failure != nil:
		rec.Status = model.StatusFailed
		rec.ErrorKind = markerType(testCase.Failure)
		rec.ErrorMessage = markerMessage(testCase.Failure)
	case testCase.Skipped != nil:
		rec.Status = model.StatusSkipped
		rec.ErrorMessage = markerMessage(testCase.Skipped)
	}
	return rec
}

// consoleFallback guesses a coarse status from the console text when the
// structured artifact is missing or empty.
func consoleFallback(kind browser.Kind, suite string, out *Output) model.Record {
	rec := model.Record{
		Browser:  kind.String(),
		TestFile: suite,
		TestName: model.AllTests,
	}

	stdout := strings.ToLower(out.Stdout)
	switch {
	case strings.Contains(stdout, "passed") && !strings.Contains(stdout, "failed"):
		rec.Status = model.StatusPassed
	case strings.Contains(stdout, "failed"):
		rec.Status = model.StatusFailed
	default:
		rec.Status = model.StatusUnknown
	}

	// Passed records carry no error context.
	if rec.Status != model.StatusPassed {
		rec.ErrorMessage = fmt.Sprintf("Exit code: %d", out.ExitCode)
	}
	return rec
}

// checkSuiteCounters flags disagreement between suite-level counters and
// the per-case entries. Per-case data is authoritative; the disagreement
// is logged, not reconciled.
func (c *Collector) checkSuiteCounters(kind browser.Kind, suite string, doc *junit.Suite) {
	var failed int
	for _, testCase := range doc.Cases {
		if testCase.Failure != nil || testCase.Error != nil {
			failed++
		}
	}
	if doc.Failures+doc.Errors != failed {
		c.logger.Debug().
			Str("browser", kind.String()).
			Str("test_file", suite).
			Int("counter_failures", doc.Failures+doc.Errors).
			Int("case_failures", failed).
			Msg("Suite counters disagree with per-case entries, using per-case data")
	}
}

func markerType(m *junit.Marker) string {
	if m.Type == "" {
		return "Unknown"
	}
	return m.Type
}

func markerMessage(m *junit.Marker) string {
	if m.Message != "" {
		return m.Message
	}
	return strings.TrimSpace(m.Content)
}

// suiteName derives the logical suite name from a test file path stem.
func suiteName(testFile string) string {
	base := filepath.Base(filepath.Clean(testFile))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
