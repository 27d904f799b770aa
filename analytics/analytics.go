// Package analytics computes derived business metrics from appointments and
// the service catalog. Every function is a pure, total transformation over
// caller-supplied slices: no I/O, no errors, no shared state. Controllers
// fetch rows and hand them over.
package analytics

import (
	"strconv"
	"strings"
	"time"

	"maisonglow-backend/models"

	"github.com/google/uuid"
)

// Billable statuses are the single gate for all revenue math: an
// appointment contributes revenue only when confirmed or completed.
var billableStatuses = map[string]bool{
	models.StatusConfirmed: true,
	models.StatusCompleted: true,
}

// IsBillable reports whether an appointment in this status counts toward
// revenue.
func IsBillable(status string) bool {
	return billableStatuses[status]
}

// ServiceIndex builds a lookup of services by id.
func ServiceIndex(services []models.Service) map[uuid.UUID]models.Service {
	index := make(map[uuid.UUID]models.Service, len(services))
	for _, s := range services {
		index[s.ID] = s
	}
	return index
}

// AppointmentRevenue returns the revenue an appointment contributes: the
// service price for billable statuses, zero otherwise. A service id missing
// from the index contributes zero rather than failing.
func AppointmentRevenue(a models.Appointment, services map[uuid.UUID]models.Service) float64 {
	if !IsBillable(a.Status) {
		return 0
	}
	service, ok := services[a.ServiceID]
	if !ok {
		return 0
	}
	return parsePrice(service.Price)
}

// Prices are stored as decimal strings; malformed values read as zero.
func parsePrice(price string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return 0
	}
	return v
}

// FilterBillable keeps only appointments in a billable status.
func FilterBillable(appointments []models.Appointment) []models.Appointment {
	filtered := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if IsBillable(a.Status) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FilterByRange keeps appointments whose timestamp falls within [from, to],
// inclusive on whole days. Nil bounds leave that side open.
func FilterByRange(appointments []models.Appointment, from, to *time.Time) []models.Appointment {
	if from == nil && to == nil {
		return appointments
	}
	var lower, upper time.Time
	if from != nil {
		lower = beginningOfDay(*from)
	}
	if to != nil {
		upper = endOfDay(*to)
	}
	filtered := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if from != nil && a.AppointmentAt.Before(lower) {
			continue
		}
		if to != nil && a.AppointmentAt.After(upper) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

// FilterByStatus keeps appointments whose status is in the allowed set. An
// empty set allows everything.
func FilterByStatus(appointments []models.Appointment, statuses []string) []models.Appointment {
	if len(statuses) == 0 {
		return appointments
	}
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	filtered := make([]models.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if allowed[a.Status] {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// StatusLabel title-cases a status for display: "no_show" becomes "No Show".
func StatusLabel(status string) string {
	words := strings.Split(status, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func beginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, t.Location())
}
