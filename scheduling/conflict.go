package scheduling

import (
	"math"
	"time"

	"maisonglow-backend/models"

	"github.com/google/uuid"
)

// FindConflicts returns every appointment that collides with a candidate
// booking for the given service at the given time. An existing appointment
// collides when it falls on the same calendar day, is not cancelled, is not
// the excluded id (the appointment being rescheduled), and its hour-of-day
// differs from the candidate's by less than the service duration rounded up
// to whole hours.
//
// The difference is taken on fractional hours and rounded to the nearest
// whole hour, so a 09:30 candidate sits one rounded hour from a 09:00
// booking and does not collide under a one-hour window. This hour-granular
// arithmetic is deliberately coarse: it matches the accepted/rejected set
// the booking flow has always produced and must not be tightened to
// minute-precision interval overlap silently.
func FindConflicts(appointments []models.Appointment, service *models.Service, at time.Time, excludeID uuid.UUID) []models.Appointment {
	windowHours := 1
	if service != nil {
		windowHours = service.DurationHours()
	}

	candidateHour := hourOfDay(at)
	var conflicts []models.Appointment
	for _, a := range appointments {
		if a.Status == models.StatusCancelled {
			continue
		}
		if excludeID != uuid.Nil && a.ID == excludeID {
			continue
		}
		if !sameDay(a.AppointmentAt, at) {
			continue
		}
		diff := math.Round(math.Abs(hourOfDay(a.AppointmentAt) - candidateHour))
		if int(diff) < windowHours {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts
}

// HasConflict reports whether a candidate booking collides with any existing
// appointment.
func HasConflict(appointments []models.Appointment, service *models.Service, at time.Time, excludeID uuid.UUID) bool {
	return len(FindConflicts(appointments, service, at, excludeID)) > 0
}

func hourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}
