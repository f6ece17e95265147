package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/xbrowse/xbrowse/config"
)

func (a *App) initProject(ctx *cli.Context) error {
	for _, dir := range []string{"config", "tests", defaultResultsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(defaultRunConfig); os.IsNotExist(err) {
		if err := config.DefaultRun().Save(defaultRunConfig); err != nil {
			return err
		}
		a.logger.Info().Str("path", defaultRunConfig).Msg("Wrote default run config")
	} else {
		a.logger.Info().Str("path", defaultRunConfig).Msg("Run config already exists, leaving it alone")
	}

	if _, err := os.Stat(defaultBrowserConfig); os.IsNotExist(err) {
		if err := config.DefaultBrowsers().Save(defaultBrowserConfig); err != nil {
			return err
		}
		a.logger.Info().Str("path", defaultBrowserConfig).Msg("Wrote default browser config")
	} else {
		a.logger.Info().Str("path", defaultBrowserConfig).Msg("Browser config already exists, leaving it alone")
	}

	return nil
}
