/*
calendar.go - Calendar math for the simulation window

PURPOSE:
  The simulator operates on whole calendar months anchored at the first
  of the start date's month, splits months into their actual day counts
  (leap-aware, via time.AddDate normalization), and groups days into
  Monday-start ISO weeks.
*/
package sim

import "time"

// MonthStarts returns the first day of each simulated month. The window
// is anchored at the first of start's month regardless of start's day.
func MonthStarts(start time.Time, months int) []time.Time {
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	starts := make([]time.Time, 0, months)
	for i := 0; i < months; i++ {
		starts = append(starts, first.AddDate(0, i, 0))
	}
	return starts
}

// DaysInMonth returns the calendar day count of the month containing t.
// Day 0 of the following month normalizes to this month's last day.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekStart returns the Monday on or before t (ISO week convention).
func WeekStart(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
