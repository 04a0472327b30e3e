package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
)

// rawRecord maps one persisted record. Pointers distinguish absent keys
// from zero values.
type rawRecord struct {
	Date       *string  `json:"date"`
	Odometer   *float64 `json:"odometer"`
	FuelAmount *float64 `json:"fuel_amount"`
	FuelPrice  *float64 `json:"fuel_price"`
	Station    string   `json:"station"`
	Note       string   `json:"note"`
	Cost       *float64 `json:"cost"`
}

var errMissingDate = errors.New("missing date")

// decodeRecord turns one JSON object into a record. A stored cost is kept
// verbatim; it is only derived when the key is absent.
func decodeRecord(data []byte) (domain.FuelRecord, error) {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.FuelRecord{}, err
	}
	if raw.Date == nil || *raw.Date == "" {
		return domain.FuelRecord{}, errMissingDate
	}
	for _, f := range []struct {
		name string
		val  *float64
	}{{"odometer", raw.Odometer}, {"fuel_amount", raw.FuelAmount}, {"fuel_price", raw.FuelPrice}} {
		if f.val == nil {
			return domain.FuelRecord{}, fmt.Errorf("missing %s", f.name)
		}
	}

	rec := domain.NewRecord(*raw.Date, *raw.Odometer, *raw.FuelAmount, *raw.FuelPrice, raw.Station, raw.Note)
	if raw.Cost != nil {
		rec.Cost = *raw.Cost
	}
	return rec, nil
}
