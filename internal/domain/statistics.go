package domain

// Statistics summarises a ledger. Nothing here is persisted.
type Statistics struct {
	TotalRecords       int     `json:"total_records"`
	TotalCost          float64 `json:"total_cost"`
	TotalFuel          float64 `json:"total_fuel"`
	AveragePrice       float64 `json:"average_price"`
	TotalDistance      float64 `json:"total_distance"`
	AverageConsumption float64 `json:"average_consumption"`
	FirstDate          *string `json:"first_date"`
	LastDate           *string `json:"last_date"`

	// SegmentDistance sums the distances of the efficiency entries. It is
	// smaller than TotalDistance whenever a pair was skipped; the two are
	// reported side by side rather than reconciled.
	SegmentDistance float64 `json:"segment_distance"`
}

// ComputeStatistics derives the summary from records in their stored
// (date-sorted) order. An empty ledger yields zeros and nil dates.
func ComputeStatistics(records []FuelRecord) Statistics {
	stats := Statistics{TotalRecords: len(records)}
	if len(records) == 0 {
		return stats
	}

	var totalCost, totalFuel float64
	for _, r := range records {
		totalCost += r.Cost
		totalFuel += r.FuelAmount
	}
	stats.TotalCost = Round2(totalCost)
	stats.TotalFuel = Round2(totalFuel)
	if totalFuel > 0 {
		stats.AveragePrice = Round2(totalCost / totalFuel)
	}

	if len(records) > 1 {
		byOdo := sortedByOdometer(records)
		stats.TotalDistance = Round2(byOdo[len(byOdo)-1].Odometer - byOdo[0].Odometer)
	}

	efficiency := ComputeEfficiency(records)
	if len(efficiency) > 0 {
		var sumConsumption, sumDistance float64
		for _, e := range efficiency {
			sumConsumption += e.ConsumptionLPer100Km
			sumDistance += e.Distance
		}
		stats.AverageConsumption = Round2(sumConsumption / float64(len(efficiency)))
		stats.SegmentDistance = Round2(sumDistance)
	}

	first, last := records[0].Date, records[len(records)-1].Date
	stats.FirstDate = &first
	stats.LastDate = &last
	return stats
}
