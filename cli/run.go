package cli

import (
	"errors"
	"fmt"
	"os"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/urfave/cli/v2"

	"github.com/xbrowse/xbrowse/aggregate"
	"github.com/xbrowse/xbrowse/browser"
	"github.com/xbrowse/xbrowse/config"
	"github.com/xbrowse/xbrowse/report"
	"github.com/xbrowse/xbrowse/runner"
)

func (a *App) runTests(ctx *cli.Context) error {
	runCfg, err := a.loadRunConfig(ctx)
	if err != nil {
		return err
	}

	browserCfg, err := config.LoadBrowsers(a.logger, ctx.String("browser-config"))
	if err != nil {
		return err
	}
	if ctx.Bool("headless") {
		runCfg.Headless = true
		browserCfg.SetHeadless(true)
	}

	var engineCommand []string
	if s := ctx.String("engine"); s != "" {
		engineCommand, err = shellwords.Parse(s)
		if err != nil {
			return fmt.Errorf("failed to parse engine command %q: %w", s, err)
		}
	}

	manager := browser.NewManager(a.logger, browserCfg)
	collector, err := runner.NewCollector(runner.Config{
		Logger: a.logger,
		Run:    runCfg,
		Engine: runner.NewExecEngine(a.logger, engineCommand),
		Probe:  manager,
		Args:   ctx.Args().Slice(),
	})
	if err != nil {
		return err
	}

	a.logger.Info().
		Strs("browsers", runCfg.Browsers).
		Strs("test_files", runCfg.TestFiles).
		Bool("headless", runCfg.Headless).
		Msg("Starting test run")

	set, err := collector.Run(ctx.Context)
	if err != nil {
		return err
	}

	summary := aggregate.Summarize(set)
	printSummary(set, summary)

	generator := report.NewGenerator(a.logger, ctx.String("results-dir"))
	htmlPath, err := generator.Generate(set, summary)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nReport: %s\n", htmlPath)

	if summary.Counts.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d test(s) failed", summary.Counts.Failed), 1)
	}
	return nil
}

// loadRunConfig reads the run configuration and applies the command line
// overrides.
func (a *App) loadRunConfig(ctx *cli.Context) (*config.Run, error) {
	path := ctx.String("config")
	runCfg, err := config.LoadRun(path)
	if errors.Is(err, os.ErrNotExist) && !ctx.IsSet("config") {
		a.logger.Warn().Str("path", path).Msg("Run config not found, using defaults")
		runCfg, err = config.DefaultRun(), nil
	}
	if err != nil {
		return nil, err
	}

	if browsers := ctx.StringSlice("browser"); len(browsers) > 0 {
		runCfg.Browsers = browsers
	}
	if tests := ctx.StringSlice("test"); len(tests) > 0 {
		runCfg.TestFiles = tests
	}
	if ctx.IsSet("timeout") {
		runCfg.Timeout = ctx.Int("timeout")
	}
	return runCfg, nil
}
