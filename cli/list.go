package cli

// This file contains the list command for displaying previous test runs.

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/urfave/cli/v2"

	"github.com/xbrowse/xbrowse/aggregate"
	"github.com/xbrowse/xbrowse/history"
)

func (a *App) list(ctx *cli.Context) error {
	entries, err := history.LoadEntries(a.logger, ctx.String("results-dir"))
	if err != nil {
		return err
	}

	// Filter by browser if requested.
	if filter := ctx.String("browser"); filter != "" {
		var filtered []history.Entry
		for _, entry := range entries {
			if _, ok := aggregate.Summarize(&entry.Set).ByBrowser.Get(filter); ok {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	if len(entries) == 0 {
		fmt.Println("No previous runs found")
		return nil
	}

	limit := ctx.Int("limit")
	total := len(entries)
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Previous Runs (%d total)", total))
	t.AppendHeader(table.Row{"Timestamp", "Run ID", "Total", "Passed", "Failed", "Skipped", "Duration", "Report"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Total", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Duration", Align: text.AlignRight},
	})

	for _, entry := range entries {
		summary := aggregate.Summarize(&entry.Set)
		runID := entry.Set.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		t.AppendRow(table.Row{
			entry.Set.Timestamp.Format("2006-01-02 15:04:05"),
			runID,
			summary.Total,
			summary.Counts.Passed,
			summary.Counts.Failed,
			summary.Counts.Skipped,
			fmt.Sprintf("%.1fs", entry.Set.TotalDuration),
			entry.FullPath,
		})
	}
	t.Render()
	return nil
}
