package scheduling

import (
	"testing"

	"maisonglow-backend/models"

	"github.com/google/uuid"
)

func service(durationMinutes int) *models.Service {
	return &models.Service{ID: uuid.New(), Name: "Test", Price: "100", Duration: durationMinutes}
}

func TestHasConflict_WithinDurationWindow(t *testing.T) {
	existing := appointment(models.StatusConfirmed, day(10, 0))

	// A two-hour service booked one hour after an existing appointment collides.
	if !HasConflict([]models.Appointment{existing}, service(120), day(11, 0), uuid.Nil) {
		t.Error("expected conflict one hour from existing booking under a 2h window")
	}

	// Excluding the existing appointment (a reschedule of itself) clears it.
	if HasConflict([]models.Appointment{existing}, service(120), day(11, 0), existing.ID) {
		t.Error("expected no conflict when the colliding appointment is excluded")
	}
}

func TestHasConflict_OutsideDurationWindow(t *testing.T) {
	existing := appointment(models.StatusConfirmed, day(10, 0))

	if HasConflict([]models.Appointment{existing}, service(60), day(12, 0), uuid.Nil) {
		t.Error("expected no conflict two hours away under a 1h window")
	}
}

func TestHasConflict_HalfHourRoundsToOneHour(t *testing.T) {
	// Hour-granularity edge: a 60-minute service at 09:30 against a 09:00
	// booking is half an hour apart, which rounds to one whole hour and
	// does not collide under the one-hour window.
	existing := appointment(models.StatusConfirmed, day(9, 0))

	if HasConflict([]models.Appointment{existing}, service(60), day(9, 30), uuid.Nil) {
		t.Error("expected no conflict: 0.5h rounds to 1h, which is not < 1h")
	}

	// The same exact hour does collide.
	if !HasConflict([]models.Appointment{existing}, service(60), day(9, 0), uuid.Nil) {
		t.Error("expected conflict at the identical hour")
	}
}

func TestFindConflicts_SkipsCancelledAndOtherDays(t *testing.T) {
	appointments := []models.Appointment{
		appointment(models.StatusCancelled, day(10, 0)),
		appointment(models.StatusConfirmed, day(10, 0).AddDate(0, 0, 1)),
		appointment(models.StatusPending, day(10, 0)),
	}

	conflicts := FindConflicts(appointments, service(60), day(10, 0), uuid.Nil)

	if len(conflicts) != 1 {
		t.Fatalf("expected only the same-day pending appointment to collide, got %d", len(conflicts))
	}
	if conflicts[0].Status != models.StatusPending {
		t.Errorf("expected the pending appointment, got status %q", conflicts[0].Status)
	}
}

func TestFindConflicts_DurationCeiling(t *testing.T) {
	existing := appointment(models.StatusConfirmed, day(11, 0))

	// 90 minutes rounds up to a 2-hour window.
	conflicts := FindConflicts([]models.Appointment{existing}, service(90), day(10, 0), uuid.Nil)
	if len(conflicts) != 1 {
		t.Errorf("expected 90min service to collide one hour away, got %d conflicts", len(conflicts))
	}
}

func TestFindConflicts_NilServiceDefaultsToOneHour(t *testing.T) {
	existing := appointment(models.StatusConfirmed, day(10, 0))

	if !HasConflict([]models.Appointment{existing}, nil, day(10, 0), uuid.Nil) {
		t.Error("expected a missing service to fall back to a one-hour window")
	}
	if HasConflict([]models.Appointment{existing}, nil, day(11, 0), uuid.Nil) {
		t.Error("expected no conflict one hour away under the fallback window")
	}
}

func TestEndToEndScenario(t *testing.T) {
	// Two services, one confirmed 09:00 booking and one pending 09:30
	// booking. Availability drops 09:00 only; a new one-hour booking at
	// 09:30 clears the conflict check because the half-hour offsets round
	// to a full hour.
	oneHour := service(60)
	twoHour := service(120)

	appointments := []models.Appointment{
		{ID: uuid.New(), ServiceID: oneHour.ID, Status: models.StatusConfirmed, AppointmentAt: day(9, 0)},
		{ID: uuid.New(), ServiceID: twoHour.ID, Status: models.StatusPending, AppointmentAt: day(9, 30)},
	}

	slots := AvailableSlots(appointments, day(0, 0))
	want := []string{"10:30", "12:00", "13:30", "15:00", "16:30"}
	if len(slots) != len(want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, slots)
		}
	}

	// The 09:00 booking is half an hour away, which rounds to a full hour
	// and clears; the 09:30 pending booking is at the identical time and
	// collides.
	conflicts := FindConflicts(appointments, oneHour, day(9, 30), uuid.Nil)
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly one conflict, got %d", len(conflicts))
	}
	if !conflicts[0].AppointmentAt.Equal(day(9, 30)) {
		t.Errorf("expected the 09:30 booking to collide, got %v", conflicts[0].AppointmentAt)
	}
}
