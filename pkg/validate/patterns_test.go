package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsEmail tests the IsEmail function.
func TestIsEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{input: "user@example.com", expected: true},
		{input: "first.last+tag@sub.example.co", expected: true},
		{input: "user@localhost", expected: false},
		{input: "not-an-email", expected: false},
		{input: "@example.com", expected: false},
		{input: "user@.com", expected: false},
		{input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsEmail(tt.input))
		})
	}
}

// TestIsURL tests the IsURL function.
func TestIsURL(t *testing.T) {
	t.Parallel()

	assert.True(t, IsURL("https://example.com/path?q=1"))
	assert.True(t, IsURL("http://localhost:8080"))
	assert.True(t, IsURL("ftp://files.example.com"))
	assert.False(t, IsURL("example.com"), "relative URLs have no scheme")
	assert.False(t, IsURL("https://"), "scheme without host")
	assert.False(t, IsURL(""))
}

// TestIPValidators tests the IsIP, IsIPv4 and IsIPv6 functions.
func TestIPValidators(t *testing.T) {
	t.Parallel()

	assert.True(t, IsIP("192.168.0.1"))
	assert.True(t, IsIP("::1"))
	assert.False(t, IsIP("256.1.1.1"))
	assert.False(t, IsIP("not an ip"))

	assert.True(t, IsIPv4("10.0.0.1"))
	assert.False(t, IsIPv4("::1"))

	assert.True(t, IsIPv6("2001:db8::8a2e:370:7334"))
	assert.False(t, IsIPv6("10.0.0.1"))
	assert.False(t, IsIPv6("::ffff:10.0.0.1"), "IPv4-mapped addresses are not native IPv6")
}

// TestIsUUID tests the IsUUID function.
func TestIsUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.True(t, IsUUID("550E8400-E29B-41D4-A716-446655440000"))
	assert.False(t, IsUUID("550e8400e29b41d4a716446655440000"), "only the canonical hyphenated form")
	assert.False(t, IsUUID("550e8400-e29b-41d4-a716-44665544000g"))
	assert.False(t, IsUUID(""))
}

// TestIsHexColor tests the IsHexColor function.
func TestIsHexColor(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHexColor("#fff"))
	assert.True(t, IsHexColor("#1A2b3C"))
	assert.False(t, IsHexColor("fff"), "leading hash is required")
	assert.False(t, IsHexColor("#12345"))
	assert.False(t, IsHexColor("#ggg"))
}

// TestIsSSN tests the IsSSN function.
func TestIsSSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "plain digits", input: "123456789", expected: true},
		{name: "hyphenated", input: "123-45-6789", expected: true},
		{name: "zero area", input: "000-45-6789", expected: false},
		{name: "area 666", input: "666-45-6789", expected: false},
		{name: "area in the 900 range", input: "912-45-6789", expected: false},
		{name: "zero group", input: "123-00-6789", expected: false},
		{name: "zero serial", input: "123-45-0000", expected: false},
		{name: "too short", input: "12345678", expected: false},
		{name: "letters", input: "123-45-678a", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsSSN(tt.input))
		})
	}
}

// TestIsPhone tests the IsPhone function.
func TestIsPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		country  string
		expected bool
	}{
		{name: "US with separators", input: "(555) 123-4567", country: "US", expected: true},
		{name: "US with country prefix", input: "+1 555-123-4567", country: "us", expected: true},
		{name: "US too short", input: "555-1234", country: "US", expected: false},
		{name: "RU mobile", input: "+7 912 345-67-89", country: "RU", expected: true},
		{name: "FR national", input: "01 23 45 67 89", country: "FR", expected: true},
		{name: "unknown country fails closed", input: "(555) 123-4567", country: "ZZ", expected: false},
		{name: "empty country fails closed", input: "(555) 123-4567", country: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsPhone(tt.input, tt.country))
		})
	}
}

// TestIsPostalCode tests the IsPostalCode function.
func TestIsPostalCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		country  string
		expected bool
	}{
		{name: "US five digit", input: "90210", country: "US", expected: true},
		{name: "US ZIP+4", input: "90210-1234", country: "US", expected: true},
		{name: "CA with space", input: "K1A 0B1", country: "CA", expected: true},
		{name: "GB", input: "SW1A 1AA", country: "gb", expected: true},
		{name: "RU six digit", input: "101000", country: "RU", expected: true},
		{name: "NL", input: "1234 AB", country: "NL", expected: true},
		{name: "US letters rejected", input: "9021A", country: "US", expected: false},
		{name: "unknown country fails closed", input: "90210", country: "XX", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsPostalCode(tt.input, tt.country))
		})
	}
}
