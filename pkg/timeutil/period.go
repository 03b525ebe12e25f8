// Package timeutil provides the quarter/week/day arithmetic the planner
// anchors goals with. Weeks are ISO 8601 weeks; days are numbered
// 1=Monday..7=Sunday to match the week layout.
package timeutil

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid date %q: %w", v, err)
	}
	return t, nil
}

// QuarterOf returns the calendar year and quarter (1..4) of t.
func QuarterOf(t time.Time) (year, quarter int) {
	return t.Year(), (int(t.Month())-1)/3 + 1
}

// WeekOf returns the ISO week-year and week number of t.
func WeekOf(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// DayOfWeek returns the day number of t with Monday=1..Sunday=7.
func DayOfWeek(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DateOf returns the calendar date of the given ISO week-year, week, and day
// (1=Monday..7=Sunday) at midnight UTC.
func DateOf(year, week, day int) time.Time {
	// January 4 is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, -(DayOfWeek(jan4) - 1))
	return week1Monday.AddDate(0, 0, (week-1)*7+(day-1))
}

// WeeksIn returns the number of ISO weeks in the given week-year (52 or 53).
func WeeksIn(year int) int {
	// December 28 is always inside the last ISO week of its year.
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// NextWeek returns the week following (year, week), rolling the year forward
// as needed.
func NextWeek(year, week int) (int, int) {
	if week >= WeeksIn(year) {
		return year + 1, 1
	}
	return year, week + 1
}

// PrevWeek returns the week preceding (year, week), rolling the year back as
// needed.
func PrevWeek(year, week int) (int, int) {
	if week <= 1 {
		return year - 1, WeeksIn(year - 1)
	}
	return year, week - 1
}

// NextDay returns the day following (year, week, day).
func NextDay(year, week, day int) (int, int, int) {
	if day < 7 {
		return year, week, day + 1
	}
	y, w := NextWeek(year, week)
	return y, w, 1
}

// PrevDay returns the day preceding (year, week, day).
func PrevDay(year, week, day int) (int, int, int) {
	if day > 1 {
		return year, week, day - 1
	}
	y, w := PrevWeek(year, week)
	return y, w, 7
}

// DayLabel renders a short weekday label for day numbers 1..7.
func DayLabel(day int) string {
	labels := [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if day < 1 || day > 7 {
		return "?"
	}
	return labels[day-1]
}
