package timeutil

//go:generate $MOCKGEN -source=clock.go -destination=mocks/clock_mock.go

import "time"

// Clock supplies the current time to the relative-time calculations.
// Inject a fake implementation in tests to pin "now".
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// systemClock is the default Clock backed by the wall clock.
type systemClock struct{}

// Now returns the current wall-clock time.
func (systemClock) Now() time.Time {
	return time.Now()
}

//nolint:gochecknoglobals // The package clock is swappable state by design, mirroring the global logger.
var clock Clock = systemClock{}

// SetClock replaces the package clock. Passing nil restores the system clock.
// It returns the previous clock so tests can restore it.
func SetClock(c Clock) Clock {
	previous := clock

	if c == nil {
		c = systemClock{}
	}

	clock = c

	return previous
}
