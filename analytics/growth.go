package analytics

import (
	"time"

	"maisonglow-backend/models"
)

// Growth holds period-over-period percentage changes.
type Growth struct {
	RevenueGrowth     float64 `json:"revenueGrowth"`
	AppointmentGrowth float64 `json:"appointmentGrowth"`
}

// PeriodGrowth compares billable revenue and billable appointment count in
// [from, to] against the immediately preceding period of identical length,
// ending the day before from. Growth is (current-previous)/previous*100 and
// 0 when the previous period is zero, never NaN or Inf.
func PeriodGrowth(appointments []models.Appointment, services []models.Service, from, to time.Time) Growth {
	from = beginningOfDay(from)
	to = beginningOfDay(to)
	days := int(to.Sub(from).Hours() / 24)

	prevTo := from.AddDate(0, 0, -1)
	prevFrom := prevTo.AddDate(0, 0, -days)

	currentRevenue, currentCount := periodTotals(appointments, services, from, to)
	previousRevenue, previousCount := periodTotals(appointments, services, prevFrom, prevTo)

	return Growth{
		RevenueGrowth:     growthPercentage(currentRevenue, previousRevenue),
		AppointmentGrowth: growthPercentage(float64(currentCount), float64(previousCount)),
	}
}

func periodTotals(appointments []models.Appointment, services []models.Service, from, to time.Time) (float64, int) {
	index := ServiceIndex(services)
	upper := endOfDay(to)

	var revenue float64
	var count int
	for _, a := range appointments {
		if !IsBillable(a.Status) {
			continue
		}
		if a.AppointmentAt.Before(from) || a.AppointmentAt.After(upper) {
			continue
		}
		revenue += AppointmentRevenue(a, index)
		count++
	}
	return revenue, count
}

func growthPercentage(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
