package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2024, 6, 10, 15, 42, 7, 123, time.Local)
	got := BeginningOfDay(in)
	want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 10, 23, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 13, 1, 0, 0, 0, time.Local)
	if days := DaysBetween(start, end); days != 3 {
		t.Errorf("expected 3 days, got %d", days)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 10, 0, 1, 0, 0, time.Local)
	b := time.Date(2024, 6, 10, 23, 59, 0, 0, time.Local)
	c := time.Date(2024, 6, 11, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("expected same day for two times on June 10")
	}
	if SameDay(b, c) {
		t.Error("expected different days across midnight")
	}
}

func TestBeginningOfISOWeek(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		// Monday stays put
		{time.Date(2024, 6, 10, 14, 0, 0, 0, time.Local), time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)},
		// Sunday belongs to the week starting the previous Monday
		{time.Date(2024, 6, 16, 9, 0, 0, 0, time.Local), time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)},
		// Wednesday
		{time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local), time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)},
	}

	for _, c := range cases {
		if got := BeginningOfISOWeek(c.in); !got.Equal(c.want) {
			t.Errorf("BeginningOfISOWeek(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestBeginningOfMonth(t *testing.T) {
	in := time.Date(2024, 6, 17, 9, 0, 0, 0, time.Local)
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	if got := BeginningOfMonth(in); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
