// Package stats holds the small arithmetic behind the dashboard cards.
package stats

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Percentage returns part/total as a percentage rounded to one decimal.
// A zero or negative total yields 0.
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round1(float64(part) * 100 / float64(total))
}

// ConversionRate is the share of converted records among all records.
func ConversionRate(converted, total int) float64 {
	return Percentage(converted, total)
}

// Change returns the percent change from previous to current.
// With no previous value the change is 100 when current is positive, 0 otherwise.
func Change(current, previous int) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1(float64(current-previous) * 100 / float64(previous))
}

// RelativeTime renders t relative to now, e.g. "3 days ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d >= 0 && d < time.Minute {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// MonthWindow returns the first instant of the current and previous month of now, in UTC.
func MonthWindow(now time.Time) (current, previous time.Time) {
	now = now.UTC()
	current = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previous = current.AddDate(0, -1, 0)
	return current, previous
}

// InMonth reports whether t falls in the month starting at start.
func InMonth(t, start time.Time) bool {
	return !t.Before(start) && t.Before(start.AddDate(0, 1, 0))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
