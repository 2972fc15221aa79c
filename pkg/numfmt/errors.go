package numfmt

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

	// ErrNotFinite indicates that a NaN or infinite value was passed where a finite one is required.
	ErrNotFinite = fmt.Errorf("%w: value must be finite", ErrInvalidInput)

	// ErrDivisionByZero indicates that a ratio was requested against a zero denominator.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrInvalidInput)

	// ErrInvalidPrecision indicates that a precision argument is out of its valid range.
	ErrInvalidPrecision = fmt.Errorf("%w: precision must be at least 1", ErrInvalidInput)
)
