// Package dates holds the calendar helpers used by the sales, campaign,
// social, and review stages. All functions are pure.
package dates

import (
	"fmt"
	"time"
)

// Layout is the calendar-date format used across all generated tables.
const Layout = "2006-01-02"

// Parse parses a YYYY-MM-DD calendar date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Format formats a date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// AddDays adds n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths adds n months, treating a month as exactly 30 days. Downstream
// lifecycle windows are defined against this same approximation, so it must
// not be replaced with true calendar-month arithmetic.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n*30)
}

// DaysBetween returns the whole-day difference end - start.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// IsHolidaySeason reports whether the date falls in November or December.
func IsHolidaySeason(t time.Time) bool {
	m := t.Month()
	return m == time.November || m == time.December
}

// IsBackToSchoolSeason reports whether the date falls in August or September.
func IsBackToSchoolSeason(t time.Time) bool {
	m := t.Month()
	return m == time.August || m == time.September
}
