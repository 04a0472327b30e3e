package main

import (
	"errors"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
)

// now is replaced in tests.
var now = time.Now

func newAddCmd(opts *options) *cobra.Command {
	var in domain.RecordInput
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fill-up to the ledger",
		Example: `  fueltracker add --odometer 10500 --fuel 35 --price 7.6 --station Shell
  fueltracker add --date 2024-01-15 --odometer 10500 --fuel 35 --price 7.6`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Date == "" {
				in.Date = now().Format(domain.DateLayout)
			}
			l, _, closeStore, err := opts.openLedger(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			rec, err := l.AddInput(commandContext(cmd), in)
			if errors.Is(err, domain.ErrInvalidInput) {
				return failure("%w", err)
			}
			if err != nil && !errors.Is(err, ledger.ErrNotSaved) {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if perr := printJSON(out, rec); perr != nil {
					return perr
				}
			} else {
				goodColor.Fprintf(out, "Added %s: %s km, %s L at %s/L, cost %s\n",
					rec.Date, num(rec.Odometer), num(rec.FuelAmount), money(rec.FuelPrice), money(rec.Cost))
			}
			if err != nil {
				return notSaved(err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Date, "date", "", "fill-up date, YYYY-MM-DD (default today)")
	f.StringVar(&in.Odometer, "odometer", "", "odometer reading in km")
	f.StringVar(&in.FuelAmount, "fuel", "", "fuel added in litres")
	f.StringVar(&in.FuelPrice, "price", "", "price per litre")
	f.StringVar(&in.Station, "station", "", "station name")
	f.StringVar(&in.Note, "note", "", "free-form note")
	f.BoolVar(&asJSON, "json", false, "print the stored record as JSON")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	var since, until string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List records in ledger order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, closeStore, err := opts.openLedger(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			all := l.Records()
			filtered, err := domain.FilterByDateRange(all, since, until)
			if err != nil {
				return failure("%w", err)
			}
			rows := withPositions(all, filtered)

			if asJSON {
				return printJSON(cmd.OutOrStdout(), rows)
			}
			return printRecords(cmd.OutOrStdout(), rows)
		},
	}

	f := cmd.Flags()
	f.StringVar(&since, "since", "", "only records on or after this date (YYYY-MM-DD)")
	f.StringVar(&until, "until", "", "only records on or before this date (YYYY-MM-DD)")
	f.BoolVar(&asJSON, "json", false, "print as indented JSON")
	return cmd
}

// withPositions pairs each record of subset, an order-preserving subsequence
// of all, with its position in all.
func withPositions(all, subset []domain.FuelRecord) []indexedRecord {
	rows := make([]indexedRecord, 0, len(subset))
	j := 0
	for i, r := range all {
		if j == len(subset) {
			break
		}
		if r == subset[j] {
			rows = append(rows, indexedRecord{Position: i, FuelRecord: r})
			j++
		}
	}
	return rows
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <position>",
		Aliases: []string{"rm"},
		Short:   "Delete the record at a position shown by list",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return failure("invalid record index %q", args[0])
			}

			l, _, closeStore, err := opts.openLedger(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			ok, err := l.DeleteRecord(commandContext(cmd), position)
			if !ok {
				return failure("invalid record index %d (ledger has %d records)", position, l.Len())
			}
			goodColor.Fprintf(cmd.OutOrStdout(), "Deleted record %d\n", position)
			if err != nil {
				return notSaved(err)
			}
			return nil
		},
	}
}

func newEfficiencyCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "efficiency",
		Aliases: []string{"eff"},
		Short:   "Show consumption between consecutive fills",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, closeStore, err := opts.openLedger(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			entries := l.Efficiency()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			return printEfficiency(cmd.OutOrStdout(), entries, l.Statistics().AverageConsumption)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as indented JSON")
	return cmd
}

func newStatsCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"statistics"},
		Short:   "Show ledger totals and averages",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, closeStore, err := opts.openLedger(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			stats := l.Statistics()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			return printStatistics(cmd.OutOrStdout(), stats)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as indented JSON")
	return cmd
}

func newMonthlyCmd(opts *options) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show fuel and spending per month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, _, closeStore, err := opts.openLedger(cmd)
			if err != nil {
				return err
			}
			defer closeStore()

			months := l.Monthly()
			if asJSON {
				return printJSON(cmd.OutOrStdout(), months)
			}
			return printMonthly(cmd.OutOrStdout(), months)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as indented JSON")
	return cmd
}
