package parser

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
)

// ParseResult holds imported records and error stats.
type ParseResult struct {
	Records    []domain.FuelRecord
	SkipCount  int
	ErrorCount int
}

// Merge appends other's records and counters to r.
func (r *ParseResult) Merge(other ParseResult) {
	r.Records = append(r.Records, other.Records...)
	r.SkipCount += other.SkipCount
	r.ErrorCount += other.ErrorCount
}

// ParseLines reads one JSON record per line, streaming. Lines without a
// date are skipped; malformed lines are counted as errors.
func ParseLines(r io.Reader) ParseResult {
	var result ParseResult
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		rec, err := decodeRecord(line)
		if err != nil {
			if errors.Is(err, errMissingDate) {
				result.SkipCount++
			} else {
				result.ErrorCount++
			}
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		result.ErrorCount++
	}

	return result
}
