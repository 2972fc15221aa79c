package timeutil

import (
	"fmt"
	"time"
)

// Period names a calendar period for StartOf and EndOf.
type Period string

// Supported calendar periods.
const (
	// PeriodDay is a single calendar day.
	PeriodDay Period = "day"
	// PeriodWeek is an ISO week: Monday through Sunday.
	PeriodWeek Period = "week"
	// PeriodMonth is a calendar month.
	PeriodMonth Period = "month"
	// PeriodYear is a calendar year.
	PeriodYear Period = "year"
)

// endOfDayNanos is the nanosecond offset of the 23:59:59.999 boundary.
const endOfDayNanos = 999 * int(time.Millisecond)

// StartOf truncates t to the beginning of the given period (00:00:00.000)
// in t's own location. Weeks start on Monday per the ISO convention.
// An unrecognized period fails with ErrUnknownPeriod.
func StartOf(t time.Time, period Period) (time.Time, error) {
	year, month, day := t.Date()
	loc := t.Location()

	switch period {
	case PeriodDay:
		return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
	case PeriodWeek:
		// Sunday has index 0 and maps to an offset of 6 days back.
		offset := (int(t.Weekday()) + 6) % 7

		return time.Date(year, month, day-offset, 0, 0, 0, 0, loc), nil
	case PeriodMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc), nil
	case PeriodYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
}

// EndOf moves t to the end of the given period (23:59:59.999) in t's own
// location. The end of a week is the following Sunday.
// An unrecognized period fails with ErrUnknownPeriod.
func EndOf(t time.Time, period Period) (time.Time, error) {
	year, month, day := t.Date()
	loc := t.Location()

	switch period {
	case PeriodDay:
		return time.Date(year, month, day, 23, 59, 59, endOfDayNanos, loc), nil
	case PeriodWeek:
		offset := (int(t.Weekday()) + 6) % 7

		return time.Date(year, month, day-offset+6, 23, 59, 59, endOfDayNanos, loc), nil
	case PeriodMonth:
		// Day zero of the next month normalizes to the last day of this one.
		return time.Date(year, month+1, 0, 23, 59, 59, endOfDayNanos, loc), nil
	case PeriodYear:
		return time.Date(year, time.December, 31, 23, 59, 59, endOfDayNanos, loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
}
