package scheduling

import (
	"reflect"
	"testing"
	"time"

	"maisonglow-backend/models"

	"github.com/google/uuid"
)

func day(hour, minute int) time.Time {
	return time.Date(2024, 6, 10, hour, minute, 0, 0, time.Local)
}

func appointment(status string, at time.Time) models.Appointment {
	return models.Appointment{
		ID:            uuid.New(),
		ServiceID:     uuid.New(),
		Status:        status,
		AppointmentAt: at,
	}
}

func TestAvailableSlots_EmptyDay(t *testing.T) {
	slots := AvailableSlots(nil, day(0, 0))

	want := []string{"09:00", "10:30", "12:00", "13:30", "15:00", "16:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected all candidate slots %v, got %v", want, slots)
	}
}

func TestAvailableSlots_ConfirmedBlocksItsHour(t *testing.T) {
	appointments := []models.Appointment{
		appointment(models.StatusConfirmed, day(9, 0)),
	}

	slots := AvailableSlots(appointments, day(0, 0))

	want := []string{"10:30", "12:00", "13:30", "15:00", "16:30"}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("expected %v, got %v", want, slots)
	}
}

func TestAvailableSlots_HourMatchNotExactTime(t *testing.T) {
	// A confirmed 10:45 booking occupies hour 10, which blocks the 10:30 slot.
	appointments := []models.Appointment{
		appointment(models.StatusConfirmed, day(10, 45)),
	}

	slots := AvailableSlots(appointments, day(0, 0))

	for _, s := range slots {
		if s == "10:30" {
			t.Fatalf("10:30 should be blocked by a confirmed booking in hour 10, got %v", slots)
		}
	}
	if len(slots) != 5 {
		t.Errorf("expected exactly one slot removed, got %v", slots)
	}
}

func TestAvailableSlots_PendingDoesNotBlock(t *testing.T) {
	appointments := []models.Appointment{
		appointment(models.StatusPending, day(9, 0)),
		appointment(models.StatusCancelled, day(12, 0)),
		appointment(models.StatusNoShow, day(15, 0)),
	}

	slots := AvailableSlots(appointments, day(0, 0))

	if len(slots) != len(CandidateSlots) {
		t.Errorf("non-confirmed appointments must not block slots, got %v", slots)
	}
}

func TestAvailableSlots_FullyBooked(t *testing.T) {
	var appointments []models.Appointment
	for _, hour := range []int{9, 10, 12, 13, 15, 16} {
		appointments = append(appointments, appointment(models.StatusConfirmed, day(hour, 0)))
	}

	slots := AvailableSlots(appointments, day(0, 0))

	if len(slots) != 0 {
		t.Errorf("expected no availability on a fully booked day, got %v", slots)
	}
}

func TestAvailableSlots_OtherDayIgnored(t *testing.T) {
	appointments := []models.Appointment{
		appointment(models.StatusConfirmed, day(9, 0).AddDate(0, 0, 1)),
	}

	slots := AvailableSlots(appointments, day(0, 0))

	if len(slots) != len(CandidateSlots) {
		t.Errorf("appointments on other days must not block slots, got %v", slots)
	}
}
