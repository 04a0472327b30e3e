// Package export writes ledger snapshots in formats other tools can read.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ugorji/go/codec"
	"gopkg.in/yaml.v3"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/parser"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatCSV     Format = "csv"
	FormatMsgpack Format = "msgpack"
)

var writers = map[Format]func(io.Writer, []domain.FuelRecord) error{
	FormatJSON:    parser.EncodeDocument,
	FormatYAML:    writeYAML,
	FormatCSV:     writeCSV,
	FormatMsgpack: writeMsgpack,
}

// Formats lists the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for f := range writers {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat accepts a format name case-insensitively; "yml" means yaml.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if _, ok := writers[f]; !ok {
		return "", fmt.Errorf("unknown export format %q (want one of %s)", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Write encodes records to w. The JSON form is the same document the file
// store keeps, so it can be imported back.
func Write(w io.Writer, format Format, records []domain.FuelRecord) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown export format %q", format)
	}
	if records == nil {
		records = []domain.FuelRecord{}
	}
	return fn(w, records)
}

func writeYAML(w io.Writer, records []domain.FuelRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

var csvHeader = []string{"date", "odometer", "fuel_amount", "fuel_price", "station", "note", "cost"}

func writeCSV(w io.Writer, records []domain.FuelRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Date,
			formatFloat(r.Odometer),
			formatFloat(r.FuelAmount),
			formatFloat(r.FuelPrice),
			r.Station,
			r.Note,
			formatFloat(r.Cost),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeMsgpack(w io.Writer, records []domain.FuelRecord) error {
	var mh codec.MsgpackHandle
	mh.WriteExt = true
	return codec.NewEncoder(w, &mh).Encode(records)
}
