package parking

import "github.com/shopspring/decimal"

var (
	occupiedDailyRate = decimal.NewFromInt(5)
	reservedDailyRate = decimal.NewFromInt(3)
)

type ParkingStats struct {
	TotalSlots      int     `json:"total_slots"`
	AvailableSlots  int     `json:"available_slots"`
	OccupiedSlots   int     `json:"occupied_slots"`
	ReservedSlots   int     `json:"reserved_slots"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// ComputeStats counts slots by status. Disabled slots count toward the total
// only. The utilization rate is zero for an empty collection.
func ComputeStats(slots []ParkingSlot) ParkingStats {
	stats := ParkingStats{TotalSlots: len(slots)}

	for _, slot := range slots {
		switch slot.Status {
		case StatusAvailable:
			stats.AvailableSlots++
		case StatusOccupied:
			stats.OccupiedSlots++
		case StatusReserved:
			stats.ReservedSlots++
		}
	}

	stats.UtilizationRate = percent(stats.OccupiedSlots+stats.ReservedSlots, stats.TotalSlots)

	return stats
}

type DashboardSummary struct {
	ParkingStats
	AvailabilityRate      float64         `json:"availability_rate"`
	EstimatedDailyRevenue decimal.Decimal `json:"estimated_daily_revenue"`
}

func Summarize(slots []ParkingSlot) DashboardSummary {
	stats := ComputeStats(slots)
	return DashboardSummary{
		ParkingStats:          stats,
		AvailabilityRate:      percent(stats.AvailableSlots, stats.TotalSlots),
		EstimatedDailyRevenue: EstimatedDailyRevenue(stats),
	}
}

// EstimatedDailyRevenue is the flat-rate figure shown on the admin view.
func EstimatedDailyRevenue(stats ParkingStats) decimal.Decimal {
	occupied := occupiedDailyRate.Mul(decimal.NewFromInt(int64(stats.OccupiedSlots)))
	reserved := reservedDailyRate.Mul(decimal.NewFromInt(int64(stats.ReservedSlots)))
	return occupied.Add(reserved)
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
