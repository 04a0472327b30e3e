package parser

import "github.com/zhang1786/fuel-tracker-app/internal/domain"

// Dedup drops records whose date and odometer repeat an earlier record.
// Order is preserved and the first occurrence wins. Only imports use this;
// the ledger itself accepts duplicates.
func Dedup(records []domain.FuelRecord) []domain.FuelRecord {
	seen := make(map[string]struct{}, len(records))
	result := make([]domain.FuelRecord, 0, len(records))

	for _, r := range records {
		key := r.DedupKey()
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, r)
	}

	return result
}
