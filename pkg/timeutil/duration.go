package timeutil

import (
	"fmt"
	"math"
	"strings"
)

// Seconds per unit, using the fixed 365-day year and 30-day month
// approximations rather than calendar-aware arithmetic.
const (
	// SecondsPerMinute is the number of seconds in a minute.
	SecondsPerMinute int64 = 60
	// SecondsPerHour is the number of seconds in an hour.
	SecondsPerHour int64 = 3600
	// SecondsPerDay is the number of seconds in a day.
	SecondsPerDay int64 = 86400
	// SecondsPerWeek is the number of seconds in a week.
	SecondsPerWeek int64 = 604800
	// SecondsPerMonth is the number of seconds in a 30-day month.
	SecondsPerMonth int64 = 2592000
	// SecondsPerYear is the number of seconds in a 365-day year.
	SecondsPerYear int64 = 31536000
)

// DefaultMaxUnits caps the number of non-zero terms a formatted duration emits.
const DefaultMaxUnits = 3

// DurationOptions controls FormatDuration output.
// The zero value disables every unit; use DefaultDurationOptions as a base.
type DurationOptions struct {
	// IncludeYears enables the year term.
	IncludeYears bool
	// IncludeMonths enables the month term.
	IncludeMonths bool
	// IncludeWeeks enables the week term.
	IncludeWeeks bool
	// IncludeDays enables the day term.
	IncludeDays bool
	// IncludeHours enables the hour term.
	IncludeHours bool
	// IncludeMinutes enables the minute term.
	IncludeMinutes bool
	// IncludeSeconds enables the second term.
	IncludeSeconds bool
	// MaxUnits caps the number of non-zero terms emitted. Values below 1 mean no cap.
	MaxUnits int
	// Compact joins terms without spaces and shortens the zero phrase to "0s".
	Compact bool
}

// DefaultDurationOptions returns the documented defaults:
// every unit enabled, at most three terms, regular spacing.
func DefaultDurationOptions() DurationOptions {
	return DurationOptions{
		IncludeYears:   true,
		IncludeMonths:  true,
		IncludeWeeks:   true,
		IncludeDays:    true,
		IncludeHours:   true,
		IncludeMinutes: true,
		IncludeSeconds: true,
		MaxUnits:       DefaultMaxUnits,
	}
}

// durationUnit is one row of the descending decomposition table.
type durationUnit struct {
	label   string
	seconds int64
	enabled func(DurationOptions) bool
}

// durationUnits is ordered strictly descending by magnitude.
// Greedy decomposition depends on that order.
//
//nolint:gochecknoglobals // Immutable lookup table used as a constant.
var durationUnits = []durationUnit{
	{label: "y", seconds: SecondsPerYear, enabled: func(o DurationOptions) bool { return o.IncludeYears }},
	{label: "mo", seconds: SecondsPerMonth, enabled: func(o DurationOptions) bool { return o.IncludeMonths }},
	{label: "w", seconds: SecondsPerWeek, enabled: func(o DurationOptions) bool { return o.IncludeWeeks }},
	{label: "d", seconds: SecondsPerDay, enabled: func(o DurationOptions) bool { return o.IncludeDays }},
	{label: "h", seconds: SecondsPerHour, enabled: func(o DurationOptions) bool { return o.IncludeHours }},
	{label: "m", seconds: SecondsPerMinute, enabled: func(o DurationOptions) bool { return o.IncludeMinutes }},
	{label: "s", seconds: 1, enabled: func(o DurationOptions) bool { return o.IncludeSeconds }},
}

// FormatDuration decomposes a duration in whole seconds into a bounded sequence
// of unit terms, e.g. FormatDuration(3661, DefaultDurationOptions()) == "1h 1m 1s".
//
// Units are consumed greedily in descending order; the whole-unit count for each
// enabled unit is taken by a single integer division and the remainder carries
// forward. Zero-count units are skipped and do not count toward MaxUnits.
// A zero duration (or one with every unit disabled) renders as "0 seconds",
// or "0s" in compact mode.
//
// Negative durations fail with ErrNegativeDuration.
func FormatDuration(seconds int64, opts DurationOptions) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("%w: got %d", ErrNegativeDuration, seconds)
	}

	var (
		terms     []string
		remaining = seconds
	)

	for _, unit := range durationUnits {
		if opts.MaxUnits > 0 && len(terms) >= opts.MaxUnits {
			break
		}

		if !unit.enabled(opts) {
			continue
		}

		count := remaining / unit.seconds
		remaining %= unit.seconds

		if count == 0 {
			continue
		}

		terms = append(terms, fmt.Sprintf("%d%s", count, unit.label))
	}

	if len(terms) == 0 {
		if opts.Compact {
			return "0s", nil
		}

		return "0 seconds", nil
	}

	separator := " "
	if opts.Compact {
		separator = ""
	}

	return strings.Join(terms, separator), nil
}

// FormatDurationSeconds formats a duration given as a float number of seconds.
// NaN and infinities fail with ErrNotFinite; the fractional part is truncated.
func FormatDurationSeconds(seconds float64, opts DurationOptions) (string, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "", fmt.Errorf("%w: got %v", ErrNotFinite, seconds)
	}

	return FormatDuration(int64(seconds), opts)
}
