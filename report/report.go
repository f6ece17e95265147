// Package report assembles the on-disk report for one run: an HTML page
// with summary metrics and charts plus the raw results as JSON.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/xbrowse/xbrowse/aggregate"
	"github.com/xbrowse/xbrowse/model"
)

// Generator writes reports under a results directory. Each run gets its
// own subdirectory, so prior reports are never overwritten.
type Generator struct {
	logger     zerolog.Logger
	resultsDir string
}

// NewGenerator returns a generator rooted at resultsDir.
func NewGenerator(logger zerolog.Logger, resultsDir string) *Generator {
	return &Generator{logger: logger, resultsDir: resultsDir}
}

// Generate writes index.html and results.json into a fresh
// report_<timestamp>_<id> directory and returns the HTML path.
func (g *Generator) Generate(set *model.RunResultSet, summary *aggregate.Summary) (string, error) {
	reportDir := filepath.Join(g.resultsDir, reportDirName(set))
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	htmlPath := filepath.Join(reportDir, "index.html")
	page, err := renderPage(set, summary)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(htmlPath, page, 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML report: %w", err)
	}

	jsonPath := filepath.Join(reportDir, "results.json")
	raw, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(jsonPath, raw, 0644); err != nil {
		return "", fmt.Errorf("failed to write results JSON: %w", err)
	}

	g.logger.Info().
		Str("dir", reportDir).
		Int("records", len(set.Records)).
		Msg("Report generated")
	return htmlPath, nil
}

// reportDirName combines the run timestamp with a short run ID so
// concurrent or same-second runs still get distinct directories.
func reportDirName(set *model.RunResultSet) string {
	shortID := set.RunID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	name := fmt.Sprintf("report_%s", set.Timestamp.Format("20060102_150405"))
	if shortID != "" {
		name = fmt.Sprintf("%s_%s", name, shortID)
	}
	return name
}

type versionEntry struct {
	Browser string
	Version string
}

type browserGroup struct {
	Browser string
	Records []model.Record
}

type pageData struct {
	Title           string
	GeneratedAt     string
	Summary         *aggregate.Summary
	TotalDuration   float64
	BrowserVersions []versionEntry
	Groups          []browserGroup
	Charts          []chartSection
	ChartJSON       template.JS
}

func renderPage(set *model.RunResultSet, summary *aggregate.Summary) ([]byte, error) {
	charts, err := buildCharts(summary)
	if err != nil {
		return nil, err
	}
	chartJSON, err := json.Marshal(charts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart data: %w", err)
	}

	data := pageData{
		Title:           "Cross-Browser Test Report",
		GeneratedAt:     time.Now().Format("2006-01-02 15:04:05"),
		Summary:         summary,
		TotalDuration:   set.TotalDuration,
		BrowserVersions: sortedVersions(set.BrowserVersions),
		Groups:          groupByBrowser(set.Records),
		Charts:          charts,
		ChartJSON:       template.JS(chartJSON),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedVersions(versions map[string]string) []versionEntry {
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]versionEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, versionEntry{Browser: name, Version: versions[name]})
	}
	return entries
}

// groupByBrowser splits records per browser in first-seen order.
func groupByBrowser(records []model.Record) []browserGroup {
	index := make(map[string]int)
	var groups []browserGroup
	for _, rec := range records {
		i, ok := index[rec.Browser]
		if !ok {
			i = len(groups)
			index[rec.Browser] = i
			groups = append(groups, browserGroup{Browser: rec.Browser})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}
