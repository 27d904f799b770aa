// Package scheduling holds the pure booking core: slot availability and
// appointment conflict detection. Nothing in here touches the database;
// callers fetch rows and pass them in.
package scheduling

import (
	"time"

	"maisonglow-backend/models"
)

// CandidateSlots are the six fixed bookable start times per day.
var CandidateSlots = []string{"09:00", "10:30", "12:00", "13:30", "15:00", "16:30"}

var candidateHours = []int{9, 10, 12, 13, 15, 16}

// AvailableSlots returns the candidate slots still bookable on the given
// date, in the fixed candidate order. A slot is taken when a confirmed
// appointment occupies its hour. Pending bookings do not block; that is a
// policy decision carried over from the booking flow, not an oversight to
// correct here.
func AvailableSlots(appointments []models.Appointment, date time.Time) []string {
	occupied := make(map[int]bool)
	for _, a := range appointments {
		if a.Status != models.StatusConfirmed {
			continue
		}
		if !sameDay(a.AppointmentAt, date) {
			continue
		}
		occupied[a.AppointmentAt.Hour()] = true
	}

	available := make([]string, 0, len(CandidateSlots))
	for i, slot := range CandidateSlots {
		if !occupied[candidateHours[i]] {
			available = append(available, slot)
		}
	}
	return available
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
