// Package validate provides checksum validators (Luhn credit card numbers,
// ISBN-10/13) and structural validators for common data shapes: emails, URLs,
// IP addresses, UUIDs, hex colors, SSNs, and per-country phone and postal code
// patterns.
// Validators never return errors: a value that does not match reports false
// (or a zero-valued record), and unknown country codes fail closed.
package validate
