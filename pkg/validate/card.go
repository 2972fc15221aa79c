package validate

import "regexp"

// CardType identifies a card network by its digit prefix.
type CardType string

// Known card networks.
const (
	// CardTypeVisa is the Visa network.
	CardTypeVisa CardType = "visa"
	// CardTypeMasterCard is the Mastercard network.
	CardTypeMasterCard CardType = "mastercard"
	// CardTypeAmex is the American Express network.
	CardTypeAmex CardType = "amex"
	// CardTypeDiscover is the Discover network.
	CardTypeDiscover CardType = "discover"
	// CardTypeDiners is the Diners Club network.
	CardTypeDiners CardType = "diners"
	// CardTypeJCB is the JCB network.
	CardTypeJCB CardType = "jcb"
	// CardTypeUnknown means no network prefix matched.
	CardTypeUnknown CardType = ""
)

// Valid card number lengths after stripping separators.
const (
	minCardLength = 13
	maxCardLength = 19
)

// CardResult is the outcome of ValidateCard.
// Type is classified from the digit prefix independently of Valid,
// so a mistyped Visa number still reports CardTypeVisa.
type CardResult struct {
	// Valid reports whether the number passes the Luhn checksum.
	Valid bool
	// Type is the card network matched by prefix, or CardTypeUnknown.
	Type CardType
}

// cardPrefixPattern pairs a network with its digit-prefix pattern.
type cardPrefixPattern struct {
	cardType CardType
	pattern  *regexp.Regexp
}

// cardPrefixPatterns is scanned in fixed priority order; the first match wins.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var cardPrefixPatterns = []cardPrefixPattern{
	{cardType: CardTypeVisa, pattern: regexp.MustCompile(`^4`)},
	{cardType: CardTypeMasterCard, pattern: regexp.MustCompile(`^(5[1-5]|22[2-9]|2[3-6]|27[01]|2720)`)},
	{cardType: CardTypeAmex, pattern: regexp.MustCompile(`^3[47]`)},
	{cardType: CardTypeDiscover, pattern: regexp.MustCompile(`^(6011|65|64[4-9])`)},
	{cardType: CardTypeDiners, pattern: regexp.MustCompile(`^3(0[0-5]|[68])`)},
	{cardType: CardTypeJCB, pattern: regexp.MustCompile(`^35(2[89]|[3-8])`)},
}

// ValidateCard checks a credit card number against the Luhn checksum and
// classifies its network. Non-digit characters (spaces, hyphens) are stripped
// first. A stripped length outside 13-19 digits yields an invalid result with
// no classification.
func ValidateCard(raw string) CardResult {
	digits := stripNonDigits(raw)
	if len(digits) < minCardLength || len(digits) > maxCardLength {
		return CardResult{}
	}

	return CardResult{
		Valid: luhnValid(digits),
		Type:  classifyCard(digits),
	}
}

// luhnValid implements the mod-10 digit-doubling checksum: walking right to
// left, every second digit is doubled (minus nine when the double exceeds
// nine) and the total must divide by ten. digits must contain only '0'-'9'.
func luhnValid(digits string) bool {
	var (
		sum    int
		double bool
	)

	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')

		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
		double = !double
	}

	return sum%10 == 0
}

// classifyCard matches the digit prefix against the network patterns
// in priority order.
func classifyCard(digits string) CardType {
	for _, entry := range cardPrefixPatterns {
		if entry.pattern.MatchString(digits) {
			return entry.cardType
		}
	}

	return CardTypeUnknown
}
