package analytics

import (
	"math"
	"testing"
	"time"

	"maisonglow-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	svcCut   = models.Service{ID: uuid.New(), Name: "Haircut", Price: "100", Duration: 60}
	svcColor = models.Service{ID: uuid.New(), Name: "Color", Price: "200", Duration: 120}
	svcNails = models.Service{ID: uuid.New(), Name: "Nails", Price: "50", Duration: 45}

	catalog = []models.Service{svcCut, svcColor, svcNails}
)

func at(year int, month time.Month, dayOfMonth, hour int) time.Time {
	return time.Date(year, month, dayOfMonth, hour, 0, 0, 0, time.Local)
}

func booking(svc models.Service, status string, when time.Time) models.Appointment {
	return models.Appointment{
		ID:            uuid.New(),
		ServiceID:     svc.ID,
		Status:        status,
		AppointmentAt: when,
	}
}

func TestAppointmentRevenue_BillableGating(t *testing.T) {
	index := ServiceIndex(catalog)
	when := at(2024, 6, 10, 9)

	assert.Equal(t, 100.0, AppointmentRevenue(booking(svcCut, models.StatusConfirmed, when), index))
	assert.Equal(t, 100.0, AppointmentRevenue(booking(svcCut, models.StatusCompleted, when), index))

	for _, status := range []string{models.StatusPending, models.StatusCancelled, models.StatusNoShow} {
		assert.Zero(t, AppointmentRevenue(booking(svcCut, status, when), index), "status %s must not bill", status)
	}
}

func TestAppointmentRevenue_UnknownServiceIsZero(t *testing.T) {
	index := ServiceIndex(catalog)
	orphan := models.Appointment{
		ID:            uuid.New(),
		ServiceID:     uuid.New(), // not in the catalog
		Status:        models.StatusConfirmed,
		AppointmentAt: at(2024, 6, 10, 9),
	}

	assert.Zero(t, AppointmentRevenue(orphan, index))
}

func TestTopServices_OrderingAndLimit(t *testing.T) {
	day := at(2024, 6, 10, 9)
	appointments := []models.Appointment{
		// Haircut: 3 x 100 = 300
		booking(svcCut, models.StatusConfirmed, day),
		booking(svcCut, models.StatusCompleted, day),
		booking(svcCut, models.StatusConfirmed, day),
		// Nails: 2 x 50 = 100
		booking(svcNails, models.StatusConfirmed, day),
		booking(svcNails, models.StatusConfirmed, day),
		// Color: 1 x 200 = 200
		booking(svcColor, models.StatusCompleted, day),
		// Non-billable noise
		booking(svcColor, models.StatusPending, day),
		booking(svcColor, models.StatusCancelled, day),
	}

	top := TopServices(appointments, catalog, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Haircut", top[0].Name)
	assert.Equal(t, 300.0, top[0].Revenue)
	assert.Equal(t, 3, top[0].Bookings)
	assert.Equal(t, 100.0, top[0].AverageValue)
	assert.Equal(t, "Color", top[1].Name)
	assert.Equal(t, 200.0, top[1].Revenue)
}

func TestTopServices_SkipsUnknownServices(t *testing.T) {
	orphan := models.Appointment{
		ID:            uuid.New(),
		ServiceID:     uuid.New(),
		Status:        models.StatusConfirmed,
		AppointmentAt: at(2024, 6, 10, 9),
	}

	top := TopServices([]models.Appointment{orphan}, catalog, 5)
	assert.Empty(t, top)
}

func TestStatusDistribution_SumsToWhole(t *testing.T) {
	day := at(2024, 6, 10, 9)
	appointments := []models.Appointment{
		booking(svcCut, models.StatusPending, day),
		booking(svcCut, models.StatusPending, day),
		booking(svcCut, models.StatusConfirmed, day),
		booking(svcColor, models.StatusCompleted, day),
		booking(svcColor, models.StatusNoShow, day),
		booking(svcNails, models.StatusCancelled, day),
	}

	distribution := StatusDistribution(appointments)

	totalCount := 0
	totalPercentage := 0.0
	for _, row := range distribution {
		totalCount += row.Count
		totalPercentage += row.Percentage
	}
	assert.Equal(t, len(appointments), totalCount)
	assert.InDelta(t, 100.0, totalPercentage, 1e-9)
}

func TestStatusDistribution_TitleCasedLabels(t *testing.T) {
	appointments := []models.Appointment{
		booking(svcCut, models.StatusNoShow, at(2024, 6, 10, 9)),
	}

	distribution := StatusDistribution(appointments)

	require.Len(t, distribution, 1)
	assert.Equal(t, "no_show", distribution[0].Status)
	assert.Equal(t, "No Show", distribution[0].Label)
}

func TestStatusDistribution_Empty(t *testing.T) {
	assert.Empty(t, StatusDistribution(nil))
}

func TestStatusRevenueBreakdown_BillableGate(t *testing.T) {
	day := at(2024, 6, 10, 9)
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, day),
		booking(svcColor, models.StatusPending, day),
		booking(svcColor, models.StatusPending, day),
	}

	breakdown := StatusRevenueBreakdown(appointments, catalog)

	require.Len(t, breakdown, 2)
	rows := make(map[string]StatusRevenue)
	for _, row := range breakdown {
		rows[row.Status] = row
	}
	assert.Equal(t, 100.0, rows[models.StatusConfirmed].Revenue)
	assert.Equal(t, 1, rows[models.StatusConfirmed].Count)
	assert.Zero(t, rows[models.StatusPending].Revenue, "non-billable statuses carry zero revenue")
	assert.Equal(t, 2, rows[models.StatusPending].Count)
}

func TestPeakHours_SortedByHour(t *testing.T) {
	appointments := []models.Appointment{
		booking(svcCut, models.StatusPending, at(2024, 6, 10, 15)),
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 10, 9)),
		booking(svcCut, models.StatusCancelled, at(2024, 6, 11, 9)),
		booking(svcColor, models.StatusCompleted, at(2024, 6, 12, 12)),
	}

	hours := PeakHours(appointments)

	require.Len(t, hours, 3)
	assert.Equal(t, HourCount{Hour: 9, Count: 2}, hours[0])
	assert.Equal(t, HourCount{Hour: 12, Count: 1}, hours[1])
	assert.Equal(t, HourCount{Hour: 15, Count: 1}, hours[2])
}

func TestRevenueTrend_DailyBucketsSparseAndSorted(t *testing.T) {
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 12, 9)),
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 10, 9)),
		booking(svcColor, models.StatusCompleted, at(2024, 6, 10, 12)),
		booking(svcNails, models.StatusPending, at(2024, 6, 11, 9)), // not billable, bucket omitted
	}

	trend := RevenueTrend(appointments, catalog, ByDay)

	require.Len(t, trend, 2, "June 11 has no billable bookings and must be omitted")
	assert.Equal(t, "2024-06-10", trend[0].Label)
	assert.Equal(t, 300.0, trend[0].Revenue)
	assert.Equal(t, 2, trend[0].Appointments)
	assert.Equal(t, "2024-06-12", trend[1].Label)
	assert.Equal(t, 100.0, trend[1].Revenue)
}

func TestRevenueTrend_WeekBucketsStartMonday(t *testing.T) {
	// 2024-06-10 is a Monday; 2024-06-16 the following Sunday.
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 10, 9)),
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 16, 9)),
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 17, 9)),
	}

	trend := RevenueTrend(appointments, catalog, ByWeek)

	require.Len(t, trend, 2)
	assert.Equal(t, "2024-06-10", trend[0].Label)
	assert.Equal(t, 2, trend[0].Appointments)
	assert.Equal(t, "2024-06-17", trend[1].Label)
}

func TestRevenueTrend_MonthBuckets(t *testing.T) {
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, at(2024, 5, 28, 9)),
		booking(svcColor, models.StatusConfirmed, at(2024, 6, 3, 9)),
		booking(svcCut, models.StatusCompleted, at(2024, 6, 25, 9)),
	}

	trend := RevenueTrend(appointments, catalog, ByMonth)

	require.Len(t, trend, 2)
	assert.Equal(t, "2024-05", trend[0].Label)
	assert.Equal(t, 100.0, trend[0].Revenue)
	assert.Equal(t, "2024-06", trend[1].Label)
	assert.Equal(t, 300.0, trend[1].Revenue)
}

func TestPeriodGrowth(t *testing.T) {
	// Current week: 200 revenue, 2 bookings. Previous week: 100, 1.
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 10, 9)),
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 12, 9)),
		booking(svcCut, models.StatusCompleted, at(2024, 6, 4, 9)),
	}

	growth := PeriodGrowth(appointments, catalog, at(2024, 6, 10, 0), at(2024, 6, 16, 0))

	assert.Equal(t, 100.0, growth.RevenueGrowth)
	assert.Equal(t, 100.0, growth.AppointmentGrowth)
}

func TestPeriodGrowth_ZeroPreviousPeriod(t *testing.T) {
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 10, 9)),
	}

	growth := PeriodGrowth(appointments, catalog, at(2024, 6, 10, 0), at(2024, 6, 16, 0))

	assert.Zero(t, growth.RevenueGrowth, "growth over an empty previous period is 0, not Inf")
	assert.Zero(t, growth.AppointmentGrowth)
	assert.False(t, math.IsNaN(growth.RevenueGrowth))
	assert.False(t, math.IsInf(growth.RevenueGrowth, 0))
}

func TestPeriodGrowth_EmptyInput(t *testing.T) {
	growth := PeriodGrowth(nil, catalog, at(2024, 6, 10, 0), at(2024, 6, 16, 0))
	assert.Zero(t, growth.RevenueGrowth)
	assert.Zero(t, growth.AppointmentGrowth)
}

func TestFilterByRange(t *testing.T) {
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 9, 23)),
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 10, 9)),
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 16, 23)),
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 17, 0)),
	}

	from := at(2024, 6, 10, 0)
	to := at(2024, 6, 16, 0)
	ranged := FilterByRange(appointments, &from, &to)

	require.Len(t, ranged, 2, "range bounds are inclusive whole days")
}

func TestFilterByStatus(t *testing.T) {
	day := at(2024, 6, 10, 9)
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, day),
		booking(svcCut, models.StatusPending, day),
	}

	assert.Len(t, FilterByStatus(appointments, []string{models.StatusConfirmed}), 1)
	assert.Len(t, FilterByStatus(appointments, nil), 2, "an empty filter allows everything")
}

func TestBuildSnapshot(t *testing.T) {
	appointments := []models.Appointment{
		booking(svcCut, models.StatusConfirmed, at(2024, 6, 10, 9)),
		booking(svcColor, models.StatusCompleted, at(2024, 6, 11, 12)),
		booking(svcNails, models.StatusPending, at(2024, 6, 12, 15)),
		booking(svcCut, models.StatusConfirmed, at(2024, 5, 20, 9)), // outside range
	}

	from := at(2024, 6, 1, 0)
	to := at(2024, 6, 30, 0)
	snapshot := BuildSnapshot(appointments, catalog, &from, &to)

	assert.Equal(t, 300.0, snapshot.TotalRevenue)
	assert.Equal(t, 2, snapshot.TotalAppointments)
	assert.Equal(t, 150.0, snapshot.AverageValue)

	require.Len(t, snapshot.TopServices, 2)
	assert.Equal(t, "Color", snapshot.TopServices[0].Name)

	rows := make(map[string]StatusRevenue)
	for _, row := range snapshot.StatusBreakdown {
		rows[row.Status] = row
	}
	assert.Equal(t, 1, rows[models.StatusPending].Count)
	assert.Zero(t, rows[models.StatusPending].Revenue)

	require.Len(t, snapshot.DailyTrend, 2)
	assert.Equal(t, "2024-06-10", snapshot.DailyTrend[0].Label)
	require.NotEmpty(t, snapshot.MonthlyTrend)
	assert.Equal(t, "2024-06", snapshot.MonthlyTrend[len(snapshot.MonthlyTrend)-1].Label)
}

func TestBuildSnapshot_EmptyInputs(t *testing.T) {
	snapshot := BuildSnapshot(nil, nil, nil, nil)

	assert.Zero(t, snapshot.TotalRevenue)
	assert.Zero(t, snapshot.TotalAppointments)
	assert.Zero(t, snapshot.AverageValue)
	assert.Zero(t, snapshot.Growth.RevenueGrowth)
	assert.Empty(t, snapshot.TopServices)
	assert.Empty(t, snapshot.DailyTrend)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusLabel("pending"))
	assert.Equal(t, "No Show", StatusLabel("no_show"))
}

func TestParsePrice_Malformed(t *testing.T) {
	assert.Zero(t, parsePrice("not a number"))
	assert.Equal(t, 45.5, parsePrice(" 45.50 "))
}
