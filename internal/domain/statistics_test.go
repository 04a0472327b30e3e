package domain

import "testing"

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(nil)

	if stats.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", stats.TotalRecords)
	}
	if stats.TotalCost != 0 || stats.TotalFuel != 0 || stats.AveragePrice != 0 ||
		stats.TotalDistance != 0 || stats.AverageConsumption != 0 {
		t.Errorf("numeric aggregates not zero: %+v", stats)
	}
	if stats.FirstDate != nil || stats.LastDate != nil {
		t.Error("FirstDate/LastDate should be absent")
	}
}

func TestComputeStatistics(t *testing.T) {
	records := []FuelRecord{
		NewRecord("2024-01-01", 1000, 40, 7.5, "", ""),
		NewRecord("2024-01-15", 1500, 45, 7.8, "", ""),
		NewRecord("2024-02-01", 2100, 48, 8.0, "", ""),
	}

	stats := ComputeStatistics(records)

	if stats.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", stats.TotalRecords)
	}
	// 300 + 351 + 384
	if stats.TotalCost != 1035 {
		t.Errorf("TotalCost = %v, want 1035", stats.TotalCost)
	}
	if stats.TotalFuel != 133 {
		t.Errorf("TotalFuel = %v, want 133", stats.TotalFuel)
	}
	// 1035 / 133 = 7.7819...
	if stats.AveragePrice != 7.78 {
		t.Errorf("AveragePrice = %v, want 7.78", stats.AveragePrice)
	}
	if stats.TotalDistance != 1100 {
		t.Errorf("TotalDistance = %v, want 1100", stats.TotalDistance)
	}
	// (9.0 + 8.0) / 2
	if stats.AverageConsumption != 8.5 {
		t.Errorf("AverageConsumption = %v, want 8.5", stats.AverageConsumption)
	}
	if stats.FirstDate == nil || *stats.FirstDate != "2024-01-01" {
		t.Errorf("FirstDate = %v, want 2024-01-01", stats.FirstDate)
	}
	if stats.LastDate == nil || *stats.LastDate != "2024-02-01" {
		t.Errorf("LastDate = %v, want 2024-02-01", stats.LastDate)
	}
}

func TestComputeStatistics_SpanIgnoresSkippedSegments(t *testing.T) {
	records := []FuelRecord{
		NewRecord("2024-01-01", 1000, 40, 8, "", ""),
		NewRecord("2024-01-02", 1500, 0, 8, "", ""), // skipped pair 1000->1500
		NewRecord("2024-01-03", 2000, 50, 8, "", ""),
	}

	stats := ComputeStatistics(records)
	if stats.TotalDistance != 1000 {
		t.Errorf("TotalDistance = %v, want full span 1000", stats.TotalDistance)
	}
	if stats.SegmentDistance != 500 {
		t.Errorf("SegmentDistance = %v, want 500", stats.SegmentDistance)
	}
}

func TestComputeStatistics_SingleRecord(t *testing.T) {
	stats := ComputeStatistics([]FuelRecord{NewRecord("2024-01-01", 1000, 40, 7.5, "", "")})
	if stats.TotalDistance != 0 {
		t.Errorf("TotalDistance = %v, want 0", stats.TotalDistance)
	}
	if stats.AverageConsumption != 0 {
		t.Errorf("AverageConsumption = %v, want 0", stats.AverageConsumption)
	}
	if *stats.FirstDate != *stats.LastDate {
		t.Error("single record should have equal first/last date")
	}
}
