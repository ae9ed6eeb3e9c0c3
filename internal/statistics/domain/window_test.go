package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestMonthWindow(t *testing.T) {
	start, end := MonthWindow(date(2026, time.April, 17))

	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.April, 30, 23, 59, 59, 999999999, time.UTC), end)
}

func TestMonthWindowFebruary(t *testing.T) {
	start, end := MonthWindow(date(2026, time.February, 10))

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.February, 28, 23, 59, 59, 999999999, time.UTC), end)
}

func TestLegacyMonthWindowSpillsIntoNextMonth(t *testing.T) {
	// Day 31 of a 30-day month normalizes to the 1st of the next month,
	// which is exactly the historical dashboard behavior.
	_, end := LegacyMonthWindow(date(2026, time.April, 17))
	assert.Equal(t, time.Date(2026, time.May, 1, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)

	_, end = LegacyMonthWindow(date(2026, time.February, 10))
	assert.Equal(t, time.Date(2026, time.March, 3, 23, 59, 59, int(999*time.Millisecond), time.UTC), end)
}

func TestLegacyMonthWindowMatchesMonthWindowFor31DayMonths(t *testing.T) {
	start, end := LegacyMonthWindow(date(2026, time.August, 20))
	wantStart, wantEnd := MonthWindow(date(2026, time.August, 20))

	assert.Equal(t, wantStart, start)
	assert.True(t, end.Before(wantEnd))
	assert.Equal(t, time.August, end.Month())
	assert.Equal(t, 31, end.Day())
}

func TestTrailingMonths(t *testing.T) {
	from, to := TrailingMonths(date(2026, time.August, 15), 12)

	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestTrailingDays(t *testing.T) {
	ref := date(2026, time.August, 15)
	from, to := TrailingDays(ref, 30)

	assert.Equal(t, ref.AddDate(0, 0, -30), from)
	assert.Equal(t, ref, to)
}
