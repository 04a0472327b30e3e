package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidInput marks a record submission that could not be coerced into a FuelRecord.
var ErrInvalidInput = errors.New("invalid input")

// FuelRecord is one fill-up. Cost is computed once at creation and stored.
type FuelRecord struct {
	Date       string  `json:"date" yaml:"date"` // YYYY-MM-DD, compared as a string
	Odometer   float64 `json:"odometer" yaml:"odometer"`
	FuelAmount float64 `json:"fuel_amount" yaml:"fuel_amount"`
	FuelPrice  float64 `json:"fuel_price" yaml:"fuel_price"`
	Station    string  `json:"station" yaml:"station"`
	Note       string  `json:"note" yaml:"note"`
	Cost       float64 `json:"cost" yaml:"cost"`
}

// NewRecord builds a record and fixes its cost to fuelAmount*fuelPrice rounded to cents.
func NewRecord(date string, odometer, fuelAmount, fuelPrice float64, station, note string) FuelRecord {
	return FuelRecord{
		Date:       date,
		Odometer:   odometer,
		FuelAmount: fuelAmount,
		FuelPrice:  fuelPrice,
		Station:    station,
		Note:       note,
		Cost:       Round2(fuelAmount * fuelPrice),
	}
}

// DedupKey identifies a fill by date and odometer reading.
func (r FuelRecord) DedupKey() string {
	return r.Date + "|" + strconv.FormatFloat(r.Odometer, 'f', -1, 64)
}

// RecordInput is a fill-up as submitted by a form, flag set or prompt.
type RecordInput struct {
	Date       string
	Odometer   string
	FuelAmount string
	FuelPrice  string
	Station    string
	Note       string
}

// FieldError names the input field that failed coercion.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

var (
	errMissing    = errors.New("required")
	errNotNumeric = errors.New("not a number")
	errNotFinite  = errors.New("must be finite")
)

// ParseRecordInput coerces the numeric fields of in and builds the record.
// Only presence and numeric type are enforced; negative or zero values pass.
func ParseRecordInput(in RecordInput) (FuelRecord, error) {
	date := strings.TrimSpace(in.Date)
	if date == "" {
		return FuelRecord{}, &FieldError{Field: "date", Err: errMissing}
	}
	odometer, err := parseNumber("odometer", in.Odometer)
	if err != nil {
		return FuelRecord{}, err
	}
	amount, err := parseNumber("fuel_amount", in.FuelAmount)
	if err != nil {
		return FuelRecord{}, err
	}
	price, err := parseNumber("fuel_price", in.FuelPrice)
	if err != nil {
		return FuelRecord{}, err
	}
	return NewRecord(date, odometer, amount, price, strings.TrimSpace(in.Station), strings.TrimSpace(in.Note)), nil
}

func parseNumber(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &FieldError{Field: field, Err: errMissing}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Value: raw, Err: errNotNumeric}
	}
	// NaN and Inf cannot be written to the JSON store.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Value: raw, Err: errNotFinite}
	}
	return v, nil
}

// SortByDate orders records by date ascending in place, keeping insertion
// order for equal dates.
func SortByDate(records []FuelRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
}

// sortedByOdometer returns a stable odometer-ascending copy.
func sortedByOdometer(records []FuelRecord) []FuelRecord {
	out := make([]FuelRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Odometer < out[j].Odometer
	})
	return out
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
