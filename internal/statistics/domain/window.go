// Package domain holds the reporting window arithmetic shared by every
// statistics query. Centralizing it keeps the month boundaries identical
// across reports.
package domain

import "time"

// MonthWindow returns the first and last instant of ref's calendar
// month, both inclusive.
func MonthWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// LegacyMonthWindow reproduces the dashboard's historical month window,
// which pinned the end to day 31 at 23:59:59.999 and let date
// normalization spill into the next month for shorter months. Kept for
// migration verification only; reports use MonthWindow.
func LegacyMonthWindow(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end := time.Date(ref.Year(), ref.Month(), 31, 23, 59, 59, int(999*time.Millisecond), ref.Location())
	return start, end
}

// TrailingMonths returns the window covering the n calendar months
// ending with ref's month: the first day of month n-1 months back
// through the first day of the following month, both inclusive.
func TrailingMonths(ref time.Time, n int) (time.Time, time.Time) {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return first.AddDate(0, -(n - 1), 0), first.AddDate(0, 1, 0)
}

// TrailingDays returns [ref - n days, ref].
func TrailingDays(ref time.Time, n int) (time.Time, time.Time) {
	return ref.AddDate(0, 0, -n), ref
}
