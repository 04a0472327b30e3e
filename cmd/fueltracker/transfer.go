package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/export"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
	"github.com/zhang1786/fuel-tracker-app/internal/parser"
)

func newExportCmd(opts *options) *cobra.Command {
	var formatName, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the ledger",
		Example: `  fueltracker export --format csv -o fuel.csv
  fueltracker export --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return failure("%w", err)
			}

			l, _, closeStore, err := opts.openLedger(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			var w io.Writer = cmd.OutOrStdout()
			var file *os.File
			if output != "" && output != "-" {
				file, err = os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer file.Close()
				w = file
			}

			records := l.Records()
			if err := export.Write(w, format, records); err != nil {
				return fmt.Errorf("export %s: %w", format, err)
			}
			if file != nil {
				if err := file.Sync(); err != nil {
					return fmt.Errorf("sync %s: %w", output, err)
				}
				goodColor.Fprintf(cmd.ErrOrStderr(), "Exported %d records to %s\n", len(records), output)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&formatName, "format", "f", "json", "output format: "+strings.Join(export.Formats(), ", "))
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newImportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file-or-dir>...",
		Short: "Merge records from ledger documents or JSONL files",
		Long: `Import reads .json ledger documents and .jsonl files (one record per
line). Directories are scanned recursively. Records already in the ledger,
matched by date and odometer, are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			var result parser.ParseResult
			for _, path := range args {
				info, err := os.Stat(path)
				if err != nil {
					return failure("%w", err)
				}
				if info.IsDir() {
					result.Merge(parser.ScanAndParse(ctx, path))
				} else {
					result.Merge(parser.ParseFile(path))
				}
			}
			opts.logger.Debug("parsed import",
				zap.Int("records", len(result.Records)),
				zap.Int("skipped", result.SkipCount),
				zap.Int("errors", result.ErrorCount))

			l, _, closeStore, err := opts.openLedger(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			added, err := l.Import(ctx, result.Records)
			if err != nil && !errors.Is(err, ledger.ErrNotSaved) {
				return err
			}

			out := cmd.OutOrStdout()
			goodColor.Fprintf(out, "Imported %d records", added)
			fmt.Fprintf(out, " (%d duplicates, %d skipped, %d errors)\n",
				len(result.Records)-added, result.SkipCount, result.ErrorCount)
			if err != nil {
				return notSaved(err)
			}
			if result.ErrorCount > 0 {
				warnColor.Fprintf(cmd.ErrOrStderr(), "Warning: %d inputs could not be parsed\n", result.ErrorCount)
			}
			return nil
		},
	}
	return cmd
}
