package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
)

// Charset names a set of characters RandomString draws from.
type Charset string

// Charsets supported by RandomString.
const (
	CharsetAlphanumeric Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CharsetAlphabetic   Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetNumeric      Charset = "0123456789"
	CharsetHex          Charset = "0123456789abcdef"
	CharsetURLSafe      Charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"
)

const uuidByteLength = 16

var (
	// ErrInvalidInput is the base error for all input validation failures
	// in this package.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidLength is returned when a requested length is below one.
	ErrInvalidLength = fmt.Errorf("%w: length must be at least 1", ErrInvalidInput)

	// ErrInvalidBound is returned when SecureInt receives a non-positive bound.
	ErrInvalidBound = fmt.Errorf("%w: bound must be positive", ErrInvalidInput)

	// ErrEmptyCharset is returned when RandomString receives an empty charset.
	ErrEmptyCharset = fmt.Errorf("%w: charset must not be empty", ErrInvalidInput)
)

// UUIDv4 returns a random RFC 4122 version 4 UUID in its canonical
// 36-character textual form.
func UUIDv4() (string, error) {
	var raw [uuidByteLength]byte

	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	// Version 4 in the high nibble of byte 6, variant 10xx in byte 8.
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80

	var buf [36]byte

	hex.Encode(buf[0:8], raw[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], raw[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], raw[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], raw[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], raw[10:16])

	return string(buf[:]), nil
}

// RandomString returns a string of the given length with every character
// drawn independently and uniformly from the charset.
func RandomString(length int, charset Charset) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	if len(charset) == 0 {
		return "", ErrEmptyCharset
	}

	result := make([]byte, length)

	for i := range result {
		index, err := SecureInt(int64(len(charset)))
		if err != nil {
			return "", err
		}

		result[i] = charset[index]
	}

	return string(result), nil
}

// SecureInt returns a uniformly distributed integer in [0, bound) from
// crypto/rand. Rejection sampling keeps the distribution unbiased for
// bounds that do not divide the generator range evenly.
func SecureInt(bound int64) (int64, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBound, bound)
	}

	// Largest multiple of bound representable as an int64.
	// Draws at or above it are rejected to keep residues uniform.
	limit := math.MaxInt64 / bound * bound

	var buf [8]byte

	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, fmt.Errorf("failed to read random bytes: %w", err)
		}

		value := int64(binary.BigEndian.Uint64(buf[:]) >> 1)

		if value >= limit {
			continue
		}

		return value % bound, nil
	}
}

// HMACSHA256 returns the hex-encoded HMAC-SHA256 of a message under a key.
func HMACSHA256(message, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)

	return hex.EncodeToString(mac.Sum(nil))
}
