package domain

// EfficiencyEntry describes consumption between two fills adjacent by odometer.
type EfficiencyEntry struct {
	Date                 string  `json:"date"` // date of the later fill
	Distance             float64 `json:"distance"`
	FuelUsed             float64 `json:"fuel_used"`
	EfficiencyKmPerL     float64 `json:"efficiency_km_per_l"`
	ConsumptionLPer100Km float64 `json:"consumption_l_per_100km"`
	FromOdometer         float64 `json:"from_odometer"`
	ToOdometer           float64 `json:"to_odometer"`
}

// ComputeEfficiency pairs fills in odometer order. The fuel added at the later
// fill is attributed to the distance driven since the previous one. Pairs with
// no forward distance or no fuel are skipped.
func ComputeEfficiency(records []FuelRecord) []EfficiencyEntry {
	results := []EfficiencyEntry{}
	if len(records) < 2 {
		return results
	}

	sorted := sortedByOdometer(records)
	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]

		distance := curr.Odometer - prev.Odometer
		fuelUsed := curr.FuelAmount
		if distance <= 0 || fuelUsed <= 0 {
			continue
		}

		results = append(results, EfficiencyEntry{
			Date:                 curr.Date,
			Distance:             Round2(distance),
			FuelUsed:             Round2(fuelUsed),
			EfficiencyKmPerL:     Round2(distance / fuelUsed),
			ConsumptionLPer100Km: Round2(fuelUsed / distance * 100),
			FromOdometer:         prev.Odometer,
			ToOdometer:           curr.Odometer,
		})
	}
	return results
}
