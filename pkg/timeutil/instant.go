package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// dateOnlyLayout accepts bare calendar dates ("2024-03-05").
const dateOnlyLayout = "2006-01-02"

// ParseInstant parses a textual instant and normalizes it to UTC.
// RFC 3339 timestamps (with or without fractional seconds) and bare
// calendar dates are accepted; anything else fails with ErrUnparsableInstant.
func ParseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrUnparsableInstant)
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableInstant, value)
}

// FormatElapsed renders a measured elapsed duration for log output,
// e.g. "1h 2m 3s", "4m 5s", "450ms".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}
