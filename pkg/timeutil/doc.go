// Package timeutil provides humanized time formatting: greedy duration
// decomposition over a fixed unit table, relative-time phrases ("3 hours ago"),
// calendar period boundaries (start/end of day, week, month, year), and
// instant parsing normalized to UTC.
// All functions are pure apart from the injectable clock used by the
// relative-time calculations.
package timeutil
