package validate

import (
	"net/netip"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// canonicalUUIDLength is the length of the 8-4-4-4-12 textual form.
const canonicalUUIDLength = 36

//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var (
	// nonDigitPattern strips everything but decimal digits.
	nonDigitPattern = regexp.MustCompile(`\D`)

	// separatorPattern strips the hyphens and spaces allowed inside ISBNs and SSNs.
	separatorPattern = regexp.MustCompile(`[-\s]`)

	// emailPattern is a pragmatic structural check, not a full RFC 5322 parser.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// hexColorPattern matches #rgb and #rrggbb forms.
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// phonePatterns maps ISO 3166-1 alpha-2 country codes to national phone formats.
// Patterns accept common separator styles and an optional country prefix.
//
//nolint:gochecknoglobals,lll // These are immutable, pre-compiled regex patterns and used as constants.
var phonePatterns = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`^(\+1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}$`),
	"CA": regexp.MustCompile(`^(\+1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}$`),
	"GB": regexp.MustCompile(`^(\+44\s?|0)\d{4}[\s.\-]?\d{6}$|^(\+44\s?|0)\d{3}[\s.\-]?\d{3}[\s.\-]?\d{4}$`),
	"DE": regexp.MustCompile(`^(\+49[\s.\-]?|0)\d{2,4}[\s.\-]?\d{5,8}$`),
	"FR": regexp.MustCompile(`^(\+33[\s.\-]?|0)[1-9]([\s.\-]?\d{2}){4}$`),
	"RU": regexp.MustCompile(`^(\+7|8)[\s.\-]?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{2}[\s.\-]?\d{2}$`),
	"AU": regexp.MustCompile(`^(\+61[\s.\-]?|0)\d[\s.\-]?\d{4}[\s.\-]?\d{4}$`),
}

// postalPatterns maps ISO 3166-1 alpha-2 country codes to postal code formats.
//
//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
var postalPatterns = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`^\d{5}(-\d{4})?$`),
	"CA": regexp.MustCompile(`^[A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d$`),
	"GB": regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]?\s?\d[A-Za-z]{2}$`),
	"DE": regexp.MustCompile(`^\d{5}$`),
	"FR": regexp.MustCompile(`^\d{5}$`),
	"RU": regexp.MustCompile(`^\d{6}$`),
	"AU": regexp.MustCompile(`^\d{4}$`),
	"NL": regexp.MustCompile(`^\d{4}\s?[A-Za-z]{2}$`),
}

// IsEmail reports whether a string looks like a deliverable email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsURL reports whether a string parses as an absolute URL with a host.
func IsURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}

// IsIP reports whether a string is a valid IPv4 or IPv6 address.
func IsIP(s string) bool {
	_, err := netip.ParseAddr(s)

	return err == nil
}

// IsIPv4 reports whether a string is a valid IPv4 address.
func IsIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)

	return err == nil && addr.Is4()
}

// IsIPv6 reports whether a string is a valid IPv6 address.
func IsIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)

	return err == nil && addr.Is6() && !addr.Is4In6()
}

// IsUUID reports whether a string is a canonically formatted RFC 4122 UUID.
func IsUUID(s string) bool {
	if len(s) != canonicalUUIDLength {
		return false
	}

	_, err := uuid.Parse(s)

	return err == nil
}

// IsHexColor reports whether a string is a #rgb or #rrggbb color.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// IsSSN reports whether a string is a structurally valid US Social Security
// number: nine digits with a non-zero, non-666, sub-900 area, a non-zero
// group, and a non-zero serial. Hyphens and spaces are stripped first.
func IsSSN(raw string) bool {
	digits := stripSeparators(raw)
	if len(digits) != 9 {
		return false
	}

	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	area := digits[:3]
	if area == "000" || area == "666" || area[0] == '9' {
		return false
	}

	if digits[3:5] == "00" {
		return false
	}

	return digits[5:] != "0000"
}

// IsPhone reports whether a string matches the national phone format of the
// given ISO country code. Unknown countries fail closed.
func IsPhone(raw, country string) bool {
	pattern, ok := phonePatterns[normalizeCountry(country)]
	if !ok {
		return false
	}

	return pattern.MatchString(strings.TrimSpace(raw))
}

// IsPostalCode reports whether a string matches the postal code format of the
// given ISO country code. Unknown countries fail closed.
func IsPostalCode(raw, country string) bool {
	pattern, ok := postalPatterns[normalizeCountry(country)]
	if !ok {
		return false
	}

	return pattern.MatchString(strings.TrimSpace(raw))
}

// normalizeCountry canonicalizes a country code for table lookup.
func normalizeCountry(country string) string {
	return strings.ToUpper(strings.TrimSpace(country))
}

// stripNonDigits removes every non-digit character.
func stripNonDigits(s string) string {
	return nonDigitPattern.ReplaceAllString(s, "")
}

// stripSeparators removes the hyphens and spaces allowed inside formatted numbers.
func stripSeparators(s string) string {
	return separatorPattern.ReplaceAllString(s, "")
}
