package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/spatialnav/internal/cli"
	"github.com/bnema/spatialnav/internal/cli/model"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/infrastructure/config"
	"github.com/bnema/spatialnav/internal/infrastructure/layout"
)

var previewWatch bool

var previewCmd = &cobra.Command{
	Use:   "preview <layout>",
	Short: "Navigate a layout interactively",
	Long: `Draw a layout in the terminal and move focus around it with the
configured navigation keys. Selectable elements report when selected.

With --watch, edits to the layout file and the config file are picked up
while the preview runs.

Examples:
  spatialnav preview home.toml
  spatialnav preview --watch modal.json`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "reload layout and config on change")
}

func runPreview(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	log := app.Logger()

	l, err := layout.Load(args[0])
	if err != nil {
		return err
	}

	nav, err := cli.NewNavigator(app.Ctx(), app.Config)
	if err != nil {
		return err
	}
	km, err := app.Config.Keymap.KeyMap()
	if err != nil {
		return err
	}

	m := model.NewPreviewModel(app.Ctx(), nav, l, app.Theme, km)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())

	if !previewWatch {
		_, err = p.Run()
		return err
	}

	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	} else {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigReloadedMsg{Config: cfg})
		})
	}

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	watcher := layout.NewWatcher(args[0], func(_ context.Context, l *entity.Layout, err error) {
		p.Send(model.LayoutReloadedMsg{Layout: l, Err: err})
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := watcher.Run(gctx); err != nil {
			p.Quit()
			return err
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
