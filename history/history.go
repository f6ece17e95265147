// Package history loads the results of previous runs back from the
// results directory, one entry per generated report.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xbrowse/xbrowse/model"
)

type Entry struct {
	Set      model.RunResultSet
	FullPath string
}

// LoadEntries loads every run recorded under resultsDir, newest first.
// Report directories without a parseable results.json are skipped with a
// warning.
func LoadEntries(logger zerolog.Logger, resultsDir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(resultsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read results directory: %w", err)
	}

	var entries []Entry
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() || !strings.HasPrefix(dirEntry.Name(), "report_") {
			continue
		}

		reportDir := filepath.Join(resultsDir, dirEntry.Name())
		set, err := parseResultsJSON(filepath.Join(reportDir, "results.json"))
		if err != nil {
			logger.Warn().Err(err).Str("dir", reportDir).Msg("Failed to parse results.json")
			continue
		}

		entries = append(entries, Entry{Set: set, FullPath: reportDir})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Set.Timestamp.After(entries[j].Set.Timestamp)
	})
	return entries, nil
}

func parseResultsJSON(path string) (model.RunResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RunResultSet{}, err
	}

	var set model.RunResultSet
	if err := json.Unmarshal(data, &set); err != nil {
		return model.RunResultSet{}, err
	}
	return set, nil
}
