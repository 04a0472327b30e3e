package domain

import (
	"fmt"
	"time"
)

// DateLayout is the format record dates are entered in.
const DateLayout = "2006-01-02"

// FilterByDateRange returns records whose date falls within [since, until].
// Both boundaries are inclusive and must be YYYY-MM-DD when set; empty strings
// leave that side open. Record dates are compared as strings, never parsed.
func FilterByDateRange(records []FuelRecord, since, until string) ([]FuelRecord, error) {
	if since == "" && until == "" {
		return records, nil
	}
	for _, b := range []struct{ name, val string }{{"since", since}, {"until", until}} {
		if b.val == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, b.val); err != nil {
			return nil, fmt.Errorf("%s %q: %w", b.name, b.val, ErrInvalidInput)
		}
	}

	filtered := make([]FuelRecord, 0, len(records))
	for _, r := range records {
		day := dayPart(r.Date)
		if since != "" && day < since {
			continue
		}
		if until != "" && day > until {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

// dayPart trims anything after the YYYY-MM-DD prefix.
func dayPart(date string) string {
	if len(date) > len(DateLayout) {
		return date[:len(DateLayout)]
	}
	return date
}
