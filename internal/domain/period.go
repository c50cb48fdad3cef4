package domain

import "time"

// PeriodOf encodes the ISO week of t as isoYear*100 + isoWeek.
func PeriodOf(t time.Time) int {
	year, week := t.ISOWeek()
	return year*100 + week
}

// PreviousPeriod is the period of the ISO week before the one containing t.
func PreviousPeriod(t time.Time) int {
	return PeriodOf(t.AddDate(0, 0, -7))
}

// PeriodsBefore returns the period n weeks before the one containing t.
func PeriodsBefore(t time.Time, n int) int {
	return PeriodOf(t.AddDate(0, 0, -7*n))
}
