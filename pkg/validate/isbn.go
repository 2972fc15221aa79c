package validate

// ISBNKind identifies which checksum format an ISBN matched.
type ISBNKind string

// Supported ISBN formats.
const (
	// ISBNKind10 is the ten-digit format with a mod-11 checksum.
	ISBNKind10 ISBNKind = "ISBN-10"
	// ISBNKind13 is the thirteen-digit format with a mod-10 checksum.
	ISBNKind13 ISBNKind = "ISBN-13"
	// ISBNKindUnknown means the stripped length matched neither format.
	ISBNKindUnknown ISBNKind = ""
)

// ISBN lengths after stripping separators.
const (
	isbn10Length = 10
	isbn13Length = 13
)

// ISBNResult is the outcome of ValidateISBN.
type ISBNResult struct {
	// Valid reports whether the checksum holds.
	Valid bool
	// Kind is the format implied by the stripped length, or ISBNKindUnknown.
	Kind ISBNKind
}

// ValidateISBN checks an ISBN-10 or ISBN-13 checksum.
// Hyphens and spaces are stripped first; any other stripped length yields
// an invalid result with no kind.
func ValidateISBN(raw string) ISBNResult {
	stripped := stripSeparators(raw)

	switch len(stripped) {
	case isbn10Length:
		return ISBNResult{Valid: isbn10Valid(stripped), Kind: ISBNKind10}
	case isbn13Length:
		return ISBNResult{Valid: isbn13Valid(stripped), Kind: ISBNKind13}
	default:
		return ISBNResult{}
	}
}

// isbn10Valid checks the mod-11 weighted checksum: digit i (zero-based)
// carries weight 10-i, the final check digit carries weight 1 and may be
// the literal 'X' standing for ten.
func isbn10Valid(isbn string) bool {
	sum := 0

	for i := range 9 {
		c := isbn[i]
		if c < '0' || c > '9' {
			return false
		}

		sum += int(c-'0') * (10 - i)
	}

	check := isbn[9]

	switch {
	case check == 'X' || check == 'x':
		sum += 10
	case check >= '0' && check <= '9':
		sum += int(check - '0')
	default:
		return false
	}

	return sum%11 == 0
}

// isbn13Valid checks the mod-10 alternating-weight checksum: digits at even
// positions carry weight 1, odd positions weight 3, and the thirteenth digit
// must equal (10 - sum mod 10) mod 10.
func isbn13Valid(isbn string) bool {
	sum := 0

	for i := range 12 {
		c := isbn[i]
		if c < '0' || c > '9' {
			return false
		}

		weight := 1
		if i%2 == 1 {
			weight = 3
		}

		sum += int(c-'0') * weight
	}

	last := isbn[12]
	if last < '0' || last > '9' {
		return false
	}

	return (10-sum%10)%10 == int(last-'0')
}
