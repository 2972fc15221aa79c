package timeutil

import (
	"time"

	"github.com/handykit/handykit/pkg/locale"
)

// relativeUnit is one row of the descending relative-time threshold table.
type relativeUnit struct {
	name    string
	seconds int64
}

// relativeUnits partitions the positive integers: scanning top-down,
// the first unit whose whole count reaches 1 is the one reported.
//
//nolint:gochecknoglobals // Immutable lookup table used as a constant.
var relativeUnits = []relativeUnit{
	{name: "year", seconds: SecondsPerYear},
	{name: "month", seconds: SecondsPerMonth},
	{name: "week", seconds: SecondsPerWeek},
	{name: "day", seconds: SecondsPerDay},
	{name: "hour", seconds: SecondsPerHour},
	{name: "minute", seconds: SecondsPerMinute},
	{name: "second", seconds: 1},
}

// TimeAgo renders how long ago t was, e.g. "3 hours ago".
// A future instant delegates to TimeFromNow, so the two functions are
// consistent inverses for any instant. A sub-second difference renders
// the engine's zero phrase ("just now").
func TimeAgo(t time.Time, engine locale.Engine) string {
	diff := clock.Now().Unix() - t.Unix()
	if diff < 0 {
		return TimeFromNow(t, engine)
	}

	return relativePhrase(diff, true, engine)
}

// TimeFromNow renders how far in the future t is, e.g. "in 2 days".
// A past instant delegates to TimeAgo.
func TimeFromNow(t time.Time, engine locale.Engine) string {
	diff := t.Unix() - clock.Now().Unix()
	if diff < 0 {
		return TimeAgo(t, engine)
	}

	return relativePhrase(diff, false, engine)
}

// relativePhrase selects the largest unit with a whole count of at least one
// and formats the phrase through the locale engine. diff must be non-negative.
func relativePhrase(diff int64, past bool, engine locale.Engine) string {
	for _, unit := range relativeUnits {
		count := diff / unit.seconds
		if count >= 1 {
			return engine.FormatRelativeTime(count, unit.name, past)
		}
	}

	return engine.FormatRelativeTime(0, "second", past)
}
