package report

import (
	"fmt"
	"html/template"

	"github.com/xbrowse/xbrowse/model"
)

var pageTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"seconds": func(d *float64) string {
		if d == nil {
			return "-"
		}
		return fmt.Sprintf("%.2fs", *d)
	},
	"statusClass": func(s model.Status) string {
		return "status-" + string(s)
	},
}).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            margin: 0;
            background-color: #f8f9fa;
            color: #212529;
        }
        .navbar {
            background-color: #212529;
            color: white;
            padding: 12px 24px;
            display: flex;
            justify-content: space-between;
            align-items: center;
        }
        .navbar .brand { font-weight: bold; }
        .hero {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 24px;
            margin-bottom: 30px;
        }
        .hero h1 { margin: 0 0 8px 0; }
        .container { max-width: 1140px; margin: 0 auto; padding: 0 24px 40px; }
        .metrics { display: flex; gap: 20px; flex-wrap: wrap; }
        .metric-card {
            flex: 1 1 180px;
            background: white;
            border-radius: 10px;
            padding: 20px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .metric-value { font-size: 2.5rem; font-weight: bold; }
        .metric-label { color: #6c757d; font-size: 0.9rem; }
        .status-passed { color: #28a745; }
        .status-failed { color: #dc3545; }
        .status-skipped { color: #ffc107; }
        .status-unknown { color: #6c757d; }
        .card {
            background: white;
            border-radius: 10px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            margin: 20px 0;
            padding: 20px;
        }
        .card h2 { margin-top: 0; font-size: 1.2rem; }
        table { border-collapse: collapse; width: 100%; }
        th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #dee2e6; }
        th { color: #6c757d; font-size: 0.85rem; text-transform: uppercase; }
        .error-trace {
            background-color: #f8f9fa;
            padding: 10px;
            border-radius: 5px;
            font-family: monospace;
            font-size: 0.85rem;
            white-space: pre-wrap;
        }
        .versions { display: flex; gap: 40px; flex-wrap: wrap; }
    </style>
</head>
<body>
    <nav class="navbar">
        <span class="brand">Cross-Browser Test Report</span>
        <span>Generated: {{.GeneratedAt}}</span>
    </nav>

    <div class="hero">
        <div class="container">
            <h1>Test Execution Report</h1>
            <p>Cross-browser test results and analytics</p>
        </div>
    </div>

    <div class="container">
        <div class="metrics">
            <div class="metric-card">
                <div class="metric-value">{{.Summary.Total}}</div>
                <div class="metric-label">TOTAL TESTS</div>
            </div>
            <div class="metric-card">
                <div class="metric-value status-passed">{{.Summary.Counts.Passed}}</div>
                <div class="metric-label">PASSED</div>
            </div>
            <div class="metric-card">
                <div class="metric-value status-failed">{{.Summary.Counts.Failed}}</div>
                <div class="metric-label">FAILED</div>
            </div>
            <div class="metric-card">
                <div class="metric-value status-skipped">{{.Summary.Counts.Skipped}}</div>
                <div class="metric-label">SKIPPED</div>
            </div>
            <div class="metric-card">
                <div class="metric-value">{{printf "%.1f" .Summary.PassRate}}%</div>
                <div class="metric-label">PASS RATE</div>
            </div>
            <div class="metric-card">
                <div class="metric-value">{{printf "%.1f" .TotalDuration}}s</div>
                <div class="metric-label">TOTAL DURATION</div>
            </div>
        </div>

        {{if .BrowserVersions}}
        <div class="card">
            <h2>Browser Versions</h2>
            <div class="versions">
                {{range .BrowserVersions}}
                <div><strong>{{.Browser}}:</strong> {{.Version}}</div>
                {{end}}
            </div>
        </div>
        {{end}}

        {{range .Charts}}
        <div class="card">
            <h2>{{.Title}}</h2>
            <div id="{{.ID}}"></div>
        </div>
        {{end}}

        {{range .Groups}}
        <div class="card">
            <h2>{{.Browser}}</h2>
            <table>
                <thead>
                    <tr>
                        <th>Test File</th>
                        <th>Test Name</th>
                        <th>Status</th>
                        <th>Duration</th>
                        <th>Error</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Records}}
                    <tr>
                        <td>{{.TestFile}}</td>
                        <td>{{.TestName}}</td>
                        <td class="{{statusClass .Status}}">{{.Status}}</td>
                        <td>{{seconds .Duration}}</td>
                        <td>{{if .ErrorMessage}}<div class="error-trace">{{.ErrorMessage}}</div>{{end}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>
        {{end}}
    </div>

    <script>
        const charts = {{.ChartJSON}};
        for (const chart of charts) {
            Plotly.newPlot(chart.id, chart.data, chart.layout, {responsive: true});
        }
    </script>
</body>
</html>
`
