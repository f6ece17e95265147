package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
)

func (a *App) latestReport(ctx *cli.Context) error {
	path, err := newestReport(ctx.String("results-dir"))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, path)
	return nil
}

// newestReport returns the index.html of the most recent report under
// resultsDir. Report directory names sort chronologically, so the newest
// one is the lexicographically largest.
func newestReport(resultsDir string) (string, error) {
	entries, err := os.ReadDir(resultsDir)
	if err != nil {
		return "", fmt.Errorf("failed to read results directory: %w", err)
	}

	var reports []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "report_") {
			reports = append(reports, entry.Name())
		}
	}
	if len(reports) == 0 {
		return "", fmt.Errorf("no reports found in %s", resultsDir)
	}
	sort.Strings(reports)

	path := filepath.Join(resultsDir, reports[len(reports)-1], "index.html")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("report %s has no index.html: %w", reports[len(reports)-1], err)
	}
	return path, nil
}
