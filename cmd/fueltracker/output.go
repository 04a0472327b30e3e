package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	goodColor   = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
	badColor    = color.New(color.FgRed)
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table aligns rows with tabwriter and colors the first row as a header.
// Coloring happens after alignment so escape codes do not skew widths.
type table struct {
	out io.Writer
	buf bytes.Buffer
	tw  *tabwriter.Writer
}

func newTable(w io.Writer) *table {
	t := &table{out: w}
	t.tw = tabwriter.NewWriter(&t.buf, 0, 0, 2, ' ', 0)
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintln(t.tw, strings.Join(cells, "\t"))
}

func (t *table) flush() error {
	if err := t.tw.Flush(); err != nil {
		return err
	}
	header, rest, _ := strings.Cut(t.buf.String(), "\n")
	if _, err := headerColor.Fprintln(t.out, header); err != nil {
		return err
	}
	_, err := io.WriteString(t.out, rest)
	return err
}

func money(v float64) string {
	return fmt.Sprintf("¥%.2f", v)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// indexedRecord is a record with its current ledger position, the argument
// delete expects.
type indexedRecord struct {
	Position int `json:"position"`
	domain.FuelRecord
}

func printRecords(w io.Writer, records []indexedRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(w, i18n.T("empty_ledger"))
		return nil
	}
	t := newTable(w)
	t.row(i18n.T("col_index"), i18n.T("col_date"), i18n.T("col_odometer"), i18n.T("col_fuel"),
		i18n.T("col_price"), i18n.T("col_cost"), i18n.T("col_station"), i18n.T("col_note"))
	for _, r := range records {
		t.row(strconv.Itoa(r.Position), r.Date, num(r.Odometer), num(r.FuelAmount),
			money(r.FuelPrice), money(r.Cost), r.Station, r.Note)
	}
	return t.flush()
}

func printEfficiency(w io.Writer, entries []domain.EfficiencyEntry, average float64) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, i18n.T("no_efficiency"))
		return nil
	}
	t := newTable(w)
	t.row(i18n.T("col_date"), i18n.T("col_span"), i18n.T("col_distance"),
		i18n.T("col_fuel_used"), i18n.T("col_km_per_l"), i18n.T("col_l_per_100km"))
	for _, e := range entries {
		// Last column, so the escape codes never reach alignment.
		c := goodColor
		if e.ConsumptionLPer100Km > average {
			c = badColor
		}
		t.row(e.Date, num(e.FromOdometer)+" → "+num(e.ToOdometer), num(e.Distance),
			num(e.FuelUsed), num(e.EfficiencyKmPerL), c.Sprint(num(e.ConsumptionLPer100Km)))
	}
	return t.flush()
}

func printStatistics(w io.Writer, s domain.Statistics) error {
	t := newTable(w)
	t.row(i18n.T("statistics_title"))
	rows := []struct{ label, value string }{
		{i18n.T("stat_total_records"), strconv.Itoa(s.TotalRecords)},
		{i18n.T("stat_total_cost"), money(s.TotalCost)},
		{i18n.T("stat_total_fuel"), num(s.TotalFuel)},
		{i18n.T("stat_average_price"), money(s.AveragePrice)},
		{i18n.T("stat_total_distance"), num(s.TotalDistance)},
		{i18n.T("stat_segment_distance"), num(s.SegmentDistance)},
		{i18n.T("stat_average_consumption"), num(s.AverageConsumption)},
	}
	if s.FirstDate != nil && s.LastDate != nil {
		rows = append(rows, struct{ label, value string }{i18n.T("stat_period"), *s.FirstDate + " – " + *s.LastDate})
	}
	for _, r := range rows {
		t.row(r.label, r.value)
	}
	return t.flush()
}

func printMonthly(w io.Writer, months []domain.MonthlyAggregate) error {
	if len(months) == 0 {
		fmt.Fprintln(w, i18n.T("empty_ledger"))
		return nil
	}
	t := newTable(w)
	t.row(i18n.T("col_month"), i18n.T("col_fills"), i18n.T("stat_total_fuel"),
		i18n.T("stat_total_cost"), i18n.T("col_avg_price"))
	for _, m := range months {
		t.row(m.Month, strconv.Itoa(m.Fills), num(m.TotalFuel), money(m.TotalCost), money(m.AveragePrice))
	}
	return t.flush()
}
