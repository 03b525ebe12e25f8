package timeutil

import (
	"testing"
	"time"
)

func TestDateOfKnownWeeks(t *testing.T) {
	// ISO week 1 of 2026 starts on Monday 2025-12-29.
	got := DateOf(2026, 1, 1)
	want := time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("2026 W01 Monday: want %v, got %v", want, got)
	}

	got = DateOf(2026, 35, 2)
	want = time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("2026 W35 Tuesday: want %v, got %v", want, got)
	}
}

func TestDateOfRoundTripsWeekOf(t *testing.T) {
	for week := 1; week <= WeeksIn(2026); week++ {
		for day := 1; day <= 7; day++ {
			date := DateOf(2026, week, day)
			y, w := WeekOf(date)
			if y != 2026 || w != week || DayOfWeek(date) != day {
				t.Fatalf("round trip (2026, %d, %d) -> %v -> (%d, %d, %d)",
					week, day, date, y, w, DayOfWeek(date))
			}
		}
	}
}

func TestWeeksIn(t *testing.T) {
	if got := WeeksIn(2026); got != 53 {
		t.Fatalf("2026 has 53 ISO weeks, got %d", got)
	}
	if got := WeeksIn(2025); got != 52 {
		t.Fatalf("2025 has 52 ISO weeks, got %d", got)
	}
}

func TestWeekNavigationRollsYears(t *testing.T) {
	if y, w := NextWeek(2026, 53); y != 2027 || w != 1 {
		t.Fatalf("next after 2026 W53: got (%d, %d)", y, w)
	}
	if y, w := PrevWeek(2027, 1); y != 2026 || w != 53 {
		t.Fatalf("prev before 2027 W01: got (%d, %d)", y, w)
	}
	if y, w := NextWeek(2026, 34); y != 2026 || w != 35 {
		t.Fatalf("mid-year next: got (%d, %d)", y, w)
	}
}

func TestDayNavigationRollsWeeks(t *testing.T) {
	if y, w, d := NextDay(2026, 35, 7); y != 2026 || w != 36 || d != 1 {
		t.Fatalf("next after Sunday: got (%d, %d, %d)", y, w, d)
	}
	if y, w, d := PrevDay(2026, 35, 1); y != 2026 || w != 34 || d != 7 {
		t.Fatalf("prev before Monday: got (%d, %d, %d)", y, w, d)
	}
}

func TestQuarterOf(t *testing.T) {
	y, q := QuarterOf(time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC))
	if y != 2026 || q != 3 {
		t.Fatalf("august: got (%d, Q%d)", y, q)
	}
	_, q = QuarterOf(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if q != 1 {
		t.Fatalf("january: got Q%d", q)
	}
}

func TestDayOfWeekMondayBased(t *testing.T) {
	monday := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	if got := DayOfWeek(monday); got != 1 {
		t.Fatalf("monday: got %d", got)
	}
	sunday := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	if got := DayOfWeek(sunday); got != 7 {
		t.Fatalf("sunday: got %d", got)
	}
}

func TestDayLabel(t *testing.T) {
	if got := DayLabel(1); got != "Mon" {
		t.Fatalf("day 1: got %q", got)
	}
	if got := DayLabel(0); got != "?" {
		t.Fatalf("day 0: got %q", got)
	}
}
