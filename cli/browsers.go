package cli

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/xbrowse/xbrowse/browser"
	"github.com/xbrowse/xbrowse/config"
)

func (a *App) listBrowsers(ctx *cli.Context) error {
	browserCfg, err := config.LoadBrowsers(a.logger, ctx.String("browser-config"))
	if err != nil {
		return err
	}

	manager := browser.NewManager(a.logger, browserCfg)
	installed := browser.Detect()
	versions := manager.Versions(availableKinds(manager.Available()))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Browser", "Enabled", "Installed", "Version"})
	for _, kind := range browser.Kinds {
		name := kind.String()
		version := versions[name]
		if version == "" {
			version = "-"
		}
		t.AppendRow(table.Row{
			name,
			yesNo(browserCfg.Settings(name).Enabled),
			yesNo(installed[kind]),
			version,
		})
	}
	t.Render()
	return nil
}

func availableKinds(available map[browser.Kind]bool) []browser.Kind {
	var kinds []browser.Kind
	for _, kind := range browser.Kinds {
		if available[kind] {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
