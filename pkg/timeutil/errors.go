package timeutil

import (
	"errors"
	"fmt"
)

// Static error definitions for better error handling.
// Every concrete error wraps ErrInvalidInput so callers can classify
// all malformed-argument failures with a single errors.Is check.
var (
	// ErrInvalidInput is the base error for every malformed argument in this package.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNegativeDuration indicates that a negative duration was passed to the formatter.
	ErrNegativeDuration = fmt.Errorf("%w: duration must be non-negative", ErrInvalidInput)

	// ErrNotFinite indicates that a NaN or infinite value was passed where a finite one is required.
	ErrNotFinite = fmt.Errorf("%w: value must be finite", ErrInvalidInput)

	// ErrUnknownPeriod indicates that a period name is not one of day, week, month, year.
	ErrUnknownPeriod = fmt.Errorf("%w: unknown period", ErrInvalidInput)

	// ErrUnparsableInstant indicates that a textual instant could not be parsed.
	ErrUnparsableInstant = fmt.Errorf("%w: unparsable instant", ErrInvalidInput)
)
