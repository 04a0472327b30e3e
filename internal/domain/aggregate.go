package domain

import "sort"

// MonthlyAggregate totals the fills whose date starts with Month.
type MonthlyAggregate struct {
	Month        string  `json:"month"` // "2006-01"
	Fills        int     `json:"fills"`
	TotalFuel    float64 `json:"total_fuel"`
	TotalCost    float64 `json:"total_cost"`
	AveragePrice float64 `json:"average_price"`
}

// AggregateMonthly groups records by the YYYY-MM prefix of their date,
// newest month first. Records with a date shorter than seven characters are
// grouped under their full date string.
func AggregateMonthly(records []FuelRecord) []MonthlyAggregate {
	groups := make(map[string]*MonthlyAggregate)

	for _, r := range records {
		key := r.Date
		if len(key) > 7 {
			key = key[:7]
		}
		agg, ok := groups[key]
		if !ok {
			agg = &MonthlyAggregate{Month: key}
			groups[key] = agg
		}
		agg.Fills++
		agg.TotalFuel += r.FuelAmount
		agg.TotalCost += r.Cost
	}

	result := make([]MonthlyAggregate, 0, len(groups))
	for _, agg := range groups {
		if agg.TotalFuel > 0 {
			agg.AveragePrice = Round2(agg.TotalCost / agg.TotalFuel)
		}
		agg.TotalFuel = Round2(agg.TotalFuel)
		agg.TotalCost = Round2(agg.TotalCost)
		result = append(result, *agg)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month > result[j].Month // descending
	})
	return result
}
