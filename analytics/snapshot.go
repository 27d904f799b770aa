package analytics

import (
	"time"

	"maisonglow-backend/models"
)

// Snapshot is the aggregate dashboard payload: headline totals, growth
// against the preceding period, top services, per-status revenue, and three
// revenue-trend series.
type Snapshot struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalAppointments int     `json:"totalAppointments"` // billable only
	AverageValue      float64 `json:"averageValue"`
	Growth            Growth  `json:"growth"`

	TopServices     []ServiceRank   `json:"topServices"`
	StatusBreakdown []StatusRevenue `json:"statusBreakdown"`

	DailyTrend   []TrendPoint `json:"dailyTrend"`   // last 30 days
	WeeklyTrend  []TrendPoint `json:"weeklyTrend"`  // last 12 weeks
	MonthlyTrend []TrendPoint `json:"monthlyTrend"` // last 12 months
}

// BuildSnapshot computes the full dashboard from one appointment set so
// every figure agrees with the others. The optional range filters first;
// the billable gate applies to all revenue math after that. When no range
// is given, growth compares the 30 days ending today against the 30 days
// before.
func BuildSnapshot(appointments []models.Appointment, services []models.Service, from, to *time.Time) Snapshot {
	ranged := FilterByRange(appointments, from, to)
	billable := FilterBillable(ranged)

	refEnd := time.Now()
	if to != nil {
		refEnd = *to
	}
	refStart := refEnd.AddDate(0, 0, -29)
	if from != nil {
		refStart = *from
	}

	totalRevenue := TotalRevenue(billable, services)
	averageValue := 0.0
	if len(billable) > 0 {
		averageValue = totalRevenue / float64(len(billable))
	}

	dailyFrom := beginningOfDay(refEnd).AddDate(0, 0, -29)
	weeklyFrom := bucketStart(refEnd, ByWeek).AddDate(0, 0, -7*11)
	monthlyFrom := bucketStart(refEnd, ByMonth).AddDate(0, -11, 0)

	return Snapshot{
		TotalRevenue:      totalRevenue,
		TotalAppointments: len(billable),
		AverageValue:      averageValue,
		Growth:            PeriodGrowth(appointments, services, refStart, refEnd),
		TopServices:       TopServices(ranged, services, 5),
		StatusBreakdown:   StatusRevenueBreakdown(ranged, services),
		DailyTrend:        RevenueTrend(FilterByRange(ranged, &dailyFrom, &refEnd), services, ByDay),
		WeeklyTrend:       RevenueTrend(FilterByRange(ranged, &weeklyFrom, &refEnd), services, ByWeek),
		MonthlyTrend:      RevenueTrend(FilterByRange(ranged, &monthlyFrom, &refEnd), services, ByMonth),
	}
}
