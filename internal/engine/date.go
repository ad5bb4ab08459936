package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-dialog-calendar/internal/config"
)

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NewDate builds the midnight UTC date (year, month, day). Unlike time.Date it
// never normalizes: Feb 30 is an error, not March 2.
func NewDate(year, month, day int) (time.Time, error) {
	if year < config.MinYear || year > config.MaxYear {
		return time.Time{}, fmt.Errorf("%w: %s: %d", ErrInvalidDate, config.ErrYearRange, year)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: %s: %d", ErrInvalidDate, config.ErrMonthRange, month)
	}
	if day < 1 || day > DaysIn(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("%w: %s: %04d-%02d-%02d", ErrInvalidDate, config.ErrDayRange, year, month, day)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// MonthWeeks lays out a month as Monday-first weeks of seven day numbers.
// Cells outside the month are 0.
func MonthWeeks(year int, month time.Month) [][config.DaysPerWeek]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) + 6) % config.DaysPerWeek
	days := DaysIn(year, month)
	rows := (offset + days + config.DaysPerWeek - 1) / config.DaysPerWeek

	weeks := make([][config.DaysPerWeek]int, rows)
	for day := 1; day <= days; day++ {
		cell := offset + day - 1
		weeks[cell/config.DaysPerWeek][cell%config.DaysPerWeek] = day
	}
	return weeks
}
