package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "xbrowse"

const (
	defaultRunConfig     = "config/test_config.json"
	defaultBrowserConfig = "config/browsers.yaml"
	defaultResultsDir    = "results"
)

type App struct {
	logger zerolog.Logger
	cli    *cli.App
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		cli: &cli.App{
			Name:  AppName,
			Usage: "Run a test suite across browsers and build an HTML report",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
			},
			Before: func(ctx *cli.Context) error {
				if ctx.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.DebugLevel)
				}
				return nil
			},
		},
	}
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "run",
		Usage:  "Run the configured test files against the configured browsers",
		Action: app.runTests,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the run configuration",
				Value:   defaultRunConfig,
			},
			&cli.StringFlag{
				Name:  "browser-config",
				Usage: "Path to the browser configuration",
				Value: defaultBrowserConfig,
			},
			&cli.StringSliceFlag{
				Name:    "browser",
				Aliases: []string{"b"},
				Usage:   "Browser to test (repeatable, overrides the config)",
			},
			&cli.StringSliceFlag{
				Name:    "test",
				Aliases: []string{"t"},
				Usage:   "Test file to run (repeatable, overrides the config)",
			},
			&cli.BoolFlag{
				Name:  "headless",
				Usage: "Force headless mode for all browsers",
			},
			&cli.StringFlag{
				Name:  "engine",
				Usage: `Test engine command, e.g. "python -m pytest"`,
			},
			&cli.StringFlag{
				Name:  "results-dir",
				Usage: "Directory receiving the generated reports",
				Value: defaultResultsDir,
			},
			&cli.IntFlag{
				Name:  "timeout",
				Usage: "Per-invocation timeout in seconds (overrides the config)",
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "browsers",
		Usage:  "Show which browsers are installed and enabled",
		Action: app.listBrowsers,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "browser-config",
				Usage: "Path to the browser configuration",
				Value: defaultBrowserConfig,
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "list",
		Usage:  "List previous test runs",
		Action: app.list,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "results-dir",
				Usage: "Directory containing the generated reports",
				Value: defaultResultsDir,
			},
			&cli.StringFlag{
				Name:    "browser",
				Aliases: []string{"b"},
				Usage:   "Only show runs that include this browser",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Limit number of results (default: 20)",
				Value:   20,
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "report",
		Usage:  "Print the path of the newest generated report",
		Action: app.latestReport,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "results-dir",
				Usage: "Directory containing the generated reports",
				Value: defaultResultsDir,
			},
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "init",
		Usage:  "Scaffold the config, tests and results directories",
		Action: app.initProject,
	})
	return app
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit[:8], date)
	}
}
