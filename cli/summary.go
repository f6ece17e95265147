package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/xbrowse/xbrowse/aggregate"
	"github.com/xbrowse/xbrowse/model"
)

// printSummary renders the run summary to stdout: per-browser counts, the
// overall totals and the failing tests.
func printSummary(set *model.RunResultSet, summary *aggregate.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("Test Results (pass rate %.1f%%, %.1fs)", summary.PassRate, set.TotalDuration))
	t.AppendHeader(table.Row{"Browser", "Total", "Passed", "Failed", "Skipped", "Unknown"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Total", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Unknown", Align: text.AlignRight},
	})

	for pair := summary.ByBrowser.Oldest(); pair != nil; pair = pair.Next() {
		c := pair.Value
		t.AppendRow(table.Row{pair.Key, c.Total(), c.Passed, c.Failed, c.Skipped, c.Unknown})
	}
	t.AppendFooter(table.Row{
		"all", summary.Total,
		summary.Counts.Passed, summary.Counts.Failed,
		summary.Counts.Skipped, summary.Counts.Unknown,
	})
	t.Render()

	if summary.Counts.Failed == 0 {
		return
	}

	fmt.Fprintln(os.Stdout, "\nFailed tests:")
	for _, rec := range set.Records {
		if rec.Status != model.StatusFailed {
			continue
		}
		line := fmt.Sprintf("  [%s] %s::%s", rec.Browser, rec.TestFile, rec.TestName)
		if class := aggregate.ErrorClass(rec); class != "Unknown" {
			line = fmt.Sprintf("%s (%s)", line, class)
		}
		fmt.Fprintln(os.Stdout, line)
	}
}
