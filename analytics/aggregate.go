package analytics

import (
	"sort"
	"time"

	"maisonglow-backend/models"

	"github.com/google/uuid"
)

// Granularity selects the revenue-trend bucket size.
type Granularity string

const (
	ByDay   Granularity = "day"
	ByWeek  Granularity = "week"
	ByMonth Granularity = "month"
)

// TrendPoint is one revenue-trend bucket.
type TrendPoint struct {
	Bucket       time.Time `json:"bucket"`
	Label        string    `json:"label"`
	Revenue      float64   `json:"revenue"`
	Appointments int       `json:"appointments"`
}

// ServiceRank is one row of the top-services ranking.
type ServiceRank struct {
	ServiceID    uuid.UUID `json:"serviceId"`
	Name         string    `json:"name"`
	Revenue      float64   `json:"revenue"`
	Bookings     int       `json:"bookings"`
	AverageValue float64   `json:"averageValue"`
}

// StatusCount is one row of the status distribution.
type StatusCount struct {
	Status     string  `json:"status"`
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatusRevenue is one row of the per-status revenue breakdown.
type StatusRevenue struct {
	Status  string  `json:"status"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// HourCount is one row of the peak-hours analysis.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// RevenueTrend groups billable appointments into day, ISO-week, or
// calendar-month buckets and sums revenue and count per bucket. The result
// is sparse (buckets with no appointments are omitted) and sorted ascending
// by bucket start; callers needing a dense series generate the shell and
// merge.
func RevenueTrend(appointments []models.Appointment, services []models.Service, granularity Granularity) []TrendPoint {
	index := ServiceIndex(services)

	buckets := make(map[time.Time]*TrendPoint)
	for _, a := range appointments {
		if !IsBillable(a.Status) {
			continue
		}
		start := bucketStart(a.AppointmentAt, granularity)
		point, ok := buckets[start]
		if !ok {
			point = &TrendPoint{Bucket: start, Label: bucketLabel(start, granularity)}
			buckets[start] = point
		}
		point.Revenue += AppointmentRevenue(a, index)
		point.Appointments++
	}

	trend := make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Bucket.Before(trend[j].Bucket) })
	return trend
}

func bucketStart(t time.Time, granularity Granularity) time.Time {
	switch granularity {
	case ByWeek:
		day := beginningOfDay(t)
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		return day.AddDate(0, 0, -(weekday - 1))
	case ByMonth:
		year, month, _ := t.Date()
		return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	default:
		return beginningOfDay(t)
	}
}

func bucketLabel(start time.Time, granularity Granularity) string {
	if granularity == ByMonth {
		return start.Format("2006-01")
	}
	return start.Format("2006-01-02")
}

// TopServices ranks services by billable revenue, descending, truncated to
// limit. Appointments referencing unknown service ids are skipped.
func TopServices(appointments []models.Appointment, services []models.Service, limit int) []ServiceRank {
	index := ServiceIndex(services)

	ranks := make(map[uuid.UUID]*ServiceRank)
	for _, a := range appointments {
		if !IsBillable(a.Status) {
			continue
		}
		service, ok := index[a.ServiceID]
		if !ok {
			continue
		}
		rank, ok := ranks[a.ServiceID]
		if !ok {
			rank = &ServiceRank{ServiceID: a.ServiceID, Name: service.Name}
			ranks[a.ServiceID] = rank
		}
		rank.Revenue += parsePrice(service.Price)
		rank.Bookings++
	}

	ranking := make([]ServiceRank, 0, len(ranks))
	for _, rank := range ranks {
		if rank.Bookings > 0 {
			rank.AverageValue = rank.Revenue / float64(rank.Bookings)
		}
		ranking = append(ranking, *rank)
	}
	sort.Slice(ranking, func(i, j int) bool { return ranking[i].Revenue > ranking[j].Revenue })

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// StatusDistribution counts ALL appointments by status, with each status's
// share of the total. No billable filter applies here; the distribution
// describes the whole book of appointments.
func StatusDistribution(appointments []models.Appointment) []StatusCount {
	counts := make(map[string]int)
	for _, a := range appointments {
		counts[a.Status]++
	}

	total := len(appointments)
	distribution := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		percentage := 0.0
		if total > 0 {
			percentage = float64(count) / float64(total) * 100
		}
		distribution = append(distribution, StatusCount{
			Status:     status,
			Label:      StatusLabel(status),
			Count:      count,
			Percentage: percentage,
		})
	}
	sort.Slice(distribution, func(i, j int) bool { return distribution[i].Count > distribution[j].Count })
	return distribution
}

// StatusRevenueBreakdown groups all appointments by status; counts cover
// every appointment while revenue passes through the billable gate, so
// non-billable statuses appear with zero revenue.
func StatusRevenueBreakdown(appointments []models.Appointment, services []models.Service) []StatusRevenue {
	index := ServiceIndex(services)

	rows := make(map[string]*StatusRevenue)
	for _, a := range appointments {
		row, ok := rows[a.Status]
		if !ok {
			row = &StatusRevenue{Status: a.Status, Label: StatusLabel(a.Status)}
			rows[a.Status] = row
		}
		row.Count++
		row.Revenue += AppointmentRevenue(a, index)
	}

	breakdown := make([]StatusRevenue, 0, len(rows))
	for _, row := range rows {
		breakdown = append(breakdown, *row)
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Revenue > breakdown[j].Revenue })
	return breakdown
}

// PeakHours counts ALL appointments by hour-of-day, sorted ascending by
// hour. No status filter applies.
func PeakHours(appointments []models.Appointment) []HourCount {
	counts := make(map[int]int)
	for _, a := range appointments {
		counts[a.AppointmentAt.Hour()]++
	}

	hours := make([]HourCount, 0, len(counts))
	for hour, count := range counts {
		hours = append(hours, HourCount{Hour: hour, Count: count})
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Hour < hours[j].Hour })
	return hours
}

// TotalRevenue sums billable revenue over the given appointments.
func TotalRevenue(appointments []models.Appointment, services []models.Service) float64 {
	index := ServiceIndex(services)
	var total float64
	for _, a := range appointments {
		total += AppointmentRevenue(a, index)
	}
	return total
}
