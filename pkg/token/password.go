package token

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters, per the RFC 9106 low-memory recommendation.
const (
	argonMemoryKiB  = 64 * 1024
	argonIterations = 3
	argonThreads    = 4
	argonSaltLength = 16
	argonKeyLength  = 32
)

var (
	// ErrMalformedHash is returned by VerifyPassword when the encoded hash
	// does not follow the expected PHC string format.
	ErrMalformedHash = fmt.Errorf("%w: malformed password hash", ErrInvalidInput)

	// ErrUnsupportedVersion is returned by VerifyPassword when the encoded
	// hash was produced by an incompatible argon2 version.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported argon2 version", ErrInvalidInput)
)

// HashPassword derives an argon2id hash of a password with a random salt
// and returns it in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)

	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to read random salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonIterations, argonMemoryKiB, argonThreads, argonKeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemoryKiB,
		argonIterations,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))

	return encoded, nil
}

// VerifyPassword reports whether a password matches an encoded argon2id
// hash produced by HashPassword. The comparison is constant-time.
func VerifyPassword(password, encoded string) (bool, error) {
	salt, expected, memory, iterations, threads, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	actual := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(expected, actual) == 1, nil
}

func decodeHash(encoded string) (salt, hash []byte, memory, iterations uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	var version int

	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	if version != argon2.Version {
		return nil, nil, 0, 0, 0, fmt.Errorf("%w: got %d", ErrUnsupportedVersion, version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	return salt, hash, memory, iterations, threads, nil
}
