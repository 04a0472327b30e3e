package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zhang1786/fuel-tracker-app/internal/ui"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *options) error {
	l, res, closeStore, err := opts.openLedger(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	events, unsubscribe := l.Subscribe()
	defer unsubscribe()

	app := ui.NewApp(opts.cfg, l, events)
	app.ConfigPath = opts.configPath
	app.ReportLoad(res)

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return opts.watchLedger(gctx, l) })

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()
	cancel()
	if err := g.Wait(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
