// Package aggregate computes summary statistics over a run's result
// records. Summarize is a pure function of its input: it never mutates the
// result set and the same input always yields the same summary.
package aggregate

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/xbrowse/xbrowse/model"
)

// StatusCounts tallies records per outcome.
type StatusCounts struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Unknown int `json:"unknown"`
}

// Total returns the number of records counted.
func (c *StatusCounts) Total() int {
	return c.Passed + c.Failed + c.Skipped + c.Unknown
}

func (c *StatusCounts) add(status model.Status) {
	switch status {
	case model.StatusPassed:
		c.Passed++
	case model.StatusFailed:
		c.Failed++
	case model.StatusSkipped:
		c.Skipped++
	default:
		c.Unknown++
	}
}

// DurationPoint is one test's runtime on one browser. Only records with a
// known duration contribute points.
type DurationPoint struct {
	// Test is "<test file>::<test name>".
	Test     string       `json:"test"`
	Browser  string       `json:"browser"`
	Duration float64      `json:"duration"`
	Status   model.Status `json:"status"`
}

// Summary is the aggregated view of one run.
type Summary struct {
	// Total is the overall record count.
	Total int `json:"total"`
	// Counts splits the total by outcome.
	Counts StatusCounts `json:"counts"`
	// PassRate is passed/total as a percentage, 0 when there are no records.
	PassRate float64 `json:"pass_rate"`
	// ByBrowser groups counts per browser, in first-seen record order.
	ByBrowser *orderedmap.OrderedMap[string, *StatusCounts] `json:"by_browser"`
	// BySuite groups counts per test file, in first-seen record order.
	BySuite *orderedmap.OrderedMap[string, *StatusCounts] `json:"by_suite"`
	// Durations holds the per-test runtimes for charting.
	Durations []DurationPoint `json:"durations"`
	// Errors is a histogram of error classes over failed records carrying
	// error detail, in first-seen order. Failed records with neither an
	// error kind nor a message do not contribute.
	Errors *orderedmap.OrderedMap[string, int] `json:"errors"`
}

// Summarize folds a result set into a Summary.
func Summarize(set *model.RunResultSet) *Summary {
	s := &Summary{
		ByBrowser: orderedmap.New[string, *StatusCounts](),
		BySuite:   orderedmap.New[string, *StatusCounts](),
		Errors:    orderedmap.New[string, int](),
	}

	for _, rec := range set.Records {
		s.Total++
		s.Counts.add(rec.Status)
		groupCounts(s.ByBrowser, rec.Browser).add(rec.Status)
		groupCounts(s.BySuite, rec.TestFile).add(rec.Status)

		if rec.Duration != nil {
			s.Durations = append(s.Durations, DurationPoint{
				Test:     fmt.Sprintf("%s::%s", rec.TestFile, rec.TestName),
				Browser:  rec.Browser,
				Duration: *rec.Duration,
				Status:   rec.Status,
			})
		}

		// Failed records without any error detail stay out of the
		// histogram; there is no class to derive.
		if rec.Status == model.StatusFailed && (rec.ErrorKind != "" || rec.ErrorMessage != "") {
			class := ErrorClass(rec)
			count, _ := s.Errors.Get(class)
			s.Errors.Set(class, count+1)
		}
	}

	if s.Total > 0 {
		s.PassRate = float64(s.Counts.Passed) / float64(s.Total) * 100
	}
	return s
}

func groupCounts(m *orderedmap.OrderedMap[string, *StatusCounts], key string) *StatusCounts {
	if counts, ok := m.Get(key); ok {
		return counts
	}
	counts := &StatusCounts{}
	m.Set(key, counts)
	return counts
}

// ErrorClass maps a failed record to a short error class for the
// histogram. The structured error kind wins; otherwise the class is
// derived from the message head, e.g.
// "selenium.common.exceptions.TimeoutException: ..." yields
// "TimeoutException".
func ErrorClass(rec model.Record) string {
	if rec.ErrorKind != "" {
		return classToken(rec.ErrorKind)
	}
	if rec.ErrorMessage != "" {
		return classToken(rec.ErrorMessage)
	}
	return "Unknown"
}

// classToken takes the text before the first colon and strips any module
// or path prefix from it.
func classToken(s string) string {
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if i := strings.LastIndexAny(s, `./\`); i >= 0 {
		s = s[i+1:]
	}
	if s == "" {
		return "Unknown"
	}
	return s
}
