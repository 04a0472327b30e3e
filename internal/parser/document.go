package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
)

// ErrCorrupt reports a ledger document that is not a JSON array of records.
var ErrCorrupt = errors.New("corrupt ledger document")

// ParseDocument reads the backing-store format: a JSON array whose elements
// are all record objects. A single bad element rejects the whole document so
// that a later save cannot silently drop the unreadable part.
func ParseDocument(r io.Reader) ([]domain.FuelRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top level is not an array", ErrCorrupt)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	records := make([]domain.FuelRecord, 0, len(elems))
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrCorrupt, i)
		}
		rec, err := decodeRecord(elem)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrCorrupt, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeDocument writes records as a two-space indented JSON array.
// Non-ASCII text (station names, notes) is written as-is.
func EncodeDocument(w io.Writer, records []domain.FuelRecord) error {
	if records == nil {
		records = []domain.FuelRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
