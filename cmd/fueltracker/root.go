package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
	"github.com/zhang1786/fuel-tracker-app/internal/logging"
	"github.com/zhang1786/fuel-tracker-app/internal/store"
)

// options holds the persistent flags and what PersistentPreRunE builds
// from them.
type options struct {
	configPath string
	dataPath   string
	backend    string
	debug      bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "fueltracker",
		Short: "Track fuel fill-ups, efficiency and spending",
		Long: `fueltracker keeps a ledger of vehicle fill-ups and derives fuel
efficiency and cost statistics from it. Run without a subcommand to open
the terminal UI.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath(), "config file path")
	root.PersistentFlags().StringVar(&opts.dataPath, "data", "", "ledger file or database path (default: platform data dir)")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "storage backend: file, sqlite or redis")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newDeleteCmd(opts),
		newEfficiencyCmd(opts),
		newStatsCmd(opts),
		newMonthlyCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newServeCmd(opts),
		newTUICmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return failure("%w", err)
	}
	if o.dataPath != "" {
		cfg.Storage.Path = o.dataPath
	}
	if o.backend != "" {
		cfg.Storage.Backend = o.backend
	}
	o.cfg = cfg
	i18n.SetLanguage(cfg.General.Language)

	logger, err := logging.New(cfg.Logging, o.debug)
	if err != nil {
		return failure("%w", err)
	}
	o.logger = logger

	var set []string
	cmd.Flags().Visit(func(f *pflag.Flag) {
		set = append(set, f.Name+"="+f.Value.String())
	})
	logger.Debug("command",
		zap.String("name", cmd.CommandPath()),
		zap.Strings("flags", set),
		zap.String("config", o.configPath),
		zap.String("backend", cfg.Storage.Backend))
	return nil
}

// openLedger opens the configured store and loads the ledger from it. A
// corrupt or unreadable store is reported on stderr and the ledger starts
// empty. The returned func closes the store.
func (o *options) openLedger(cmd *cobra.Command) (*ledger.Ledger, ledger.LoadResult, func(), error) {
	s, err := store.Open(o.cfg.Storage)
	if err != nil {
		return nil, ledger.LoadResult{}, nil, failure("open store: %w", err)
	}
	l := ledger.New(s, o.logger)
	res := l.Load(commandContext(cmd))
	switch res.Status {
	case ledger.LoadCorrupt:
		warnColor.Fprintf(cmd.ErrOrStderr(), "Warning: %s is corrupt; starting with an empty ledger\n", s.Location())
	case ledger.LoadFailed:
		warnColor.Fprintf(cmd.ErrOrStderr(), "Warning: could not read %s: %v\n", s.Location(), res.Err)
	}
	closeFn := func() {
		if err := s.Close(); err != nil {
			o.logger.Warn("close store", zap.Error(err))
		}
	}
	return l, res, closeFn, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "fueltracker", version)
		},
	}
}
