// Package token generates identifiers and secrets: RFC 4122 version 4 UUIDs,
// random strings over named charsets, unbiased secure integers, and argon2id
// password hashes in PHC string format. All randomness comes from crypto/rand.
package token
