package report

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/xbrowse/xbrowse/aggregate"
)

// Status colors shared by every chart.
const (
	colorPassed  = "#28a745"
	colorFailed  = "#dc3545"
	colorSkipped = "#ffc107"
	colorUnknown = "#6c757d"
)

// chartSection is one plotly chart: the template emits a div per section
// and the page script feeds ID, Data and Layout to Plotly.newPlot.
type chartSection struct {
	ID     string `json:"id"`
	Title  string `json:"-"`
	Data   []any  `json:"data"`
	Layout any    `json:"layout"`
}

// buildCharts derives the chart payloads from the summary. Charts with no
// underlying data are omitted.
func buildCharts(summary *aggregate.Summary) ([]chartSection, error) {
	var charts []chartSection
	if summary.Total > 0 {
		charts = append(charts, statusPie(summary), browserBars(summary), suiteBars(summary))
	}
	if len(summary.Durations) > 0 {
		charts = append(charts, durationScatter(summary))
	}
	if summary.Errors.Len() > 0 {
		charts = append(charts, errorBars(summary))
	}
	return charts, nil
}

func statusPie(summary *aggregate.Summary) chartSection {
	labels := []string{"Passed", "Failed", "Skipped"}
	values := []int{summary.Counts.Passed, summary.Counts.Failed, summary.Counts.Skipped}
	colors := []string{colorPassed, colorFailed, colorSkipped}
	if summary.Counts.Unknown > 0 {
		labels = append(labels, "Unknown")
		values = append(values, summary.Counts.Unknown)
		colors = append(colors, colorUnknown)
	}

	return chartSection{
		ID:    "status_pie",
		Title: "Overall Test Results",
		Data: []any{map[string]any{
			"type":   "pie",
			"labels": labels,
			"values": values,
			"hole":   0.3,
			"marker": map[string]any{"colors": colors},
		}},
		Layout: map[string]any{"height": 400},
	}
}

// countBars builds one bar trace per status over the group keys.
func countBars(groups *orderedmap.OrderedMap[string, *aggregate.StatusCounts]) []any {
	var keys []string
	var passed, failed, skipped []int
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
		passed = append(passed, pair.Value.Passed)
		failed = append(failed, pair.Value.Failed)
		skipped = append(skipped, pair.Value.Skipped)
	}

	trace := func(name string, y []int, color string) any {
		return map[string]any{
			"type":   "bar",
			"name":   name,
			"x":      keys,
			"y":      y,
			"marker": map[string]any{"color": color},
		}
	}
	return []any{
		trace("Passed", passed, colorPassed),
		trace("Failed", failed, colorFailed),
		trace("Skipped", skipped, colorSkipped),
	}
}

func browserBars(summary *aggregate.Summary) chartSection {
	return chartSection{
		ID:    "browser_comparison",
		Title: "Test Results by Browser",
		Data:  countBars(summary.ByBrowser),
		Layout: map[string]any{
			"barmode": "group",
			"height":  400,
			"xaxis":   map[string]any{"title": "Browser"},
			"yaxis":   map[string]any{"title": "Number of Tests"},
		},
	}
}

func suiteBars(summary *aggregate.Summary) chartSection {
	return chartSection{
		ID:    "suite_summary",
		Title: "Test Results by Suite",
		Data:  countBars(summary.BySuite),
		Layout: map[string]any{
			"barmode": "stack",
			"height":  400,
			"xaxis":   map[string]any{"title": "Test Suite"},
			"yaxis":   map[string]any{"title": "Number of Tests"},
		},
	}
}

// durationScatter plots each test's runtime, one trace per browser so the
// browsers are comparable side by side.
func durationScatter(summary *aggregate.Summary) chartSection {
	byBrowser := orderedmap.New[string, []aggregate.DurationPoint]()
	for _, point := range summary.Durations {
		points, _ := byBrowser.Get(point.Browser)
		byBrowser.Set(point.Browser, append(points, point))
	}

	var traces []any
	for pair := byBrowser.Oldest(); pair != nil; pair = pair.Next() {
		var x []float64
		var y []string
		for _, point := range pair.Value {
			x = append(x, point.Duration)
			y = append(y, point.Test)
		}
		traces = append(traces, map[string]any{
			"type":   "scatter",
			"mode":   "markers",
			"name":   pair.Key,
			"x":      x,
			"y":      y,
			"marker": map[string]any{"size": 10},
		})
	}

	height := 400
	if h := len(summary.Durations) * 30; h > height {
		height = h
	}
	return chartSection{
		ID:    "duration_timeline",
		Title: "Test Execution Duration",
		Data:  traces,
		Layout: map[string]any{
			"height": height,
			"xaxis":  map[string]any{"title": "Duration (seconds)"},
		},
	}
}

func errorBars(summary *aggregate.Summary) chartSection {
	var classes []string
	var counts []int
	for pair := summary.Errors.Oldest(); pair != nil; pair = pair.Next() {
		classes = append(classes, pair.Key)
		counts = append(counts, pair.Value)
	}

	return chartSection{
		ID:    "error_distribution",
		Title: "Error Type Distribution",
		Data: []any{map[string]any{
			"type":   "bar",
			"x":      classes,
			"y":      counts,
			"marker": map[string]any{"color": colorFailed},
		}},
		Layout: map[string]any{
			"height": 400,
			"xaxis":  map[string]any{"title": "Error Type"},
			"yaxis":  map[string]any{"title": "Count"},
		},
	}
}
