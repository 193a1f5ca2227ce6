package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt digest from the given plaintext password.
//
// bcrypt embeds a fresh random salt in every digest, so two calls with the
// same plaintext produce different outputs. The work factor is bcrypt's
// DefaultCost, which keeps hashing intentionally slow to resist brute force.
//
// Returns the digest in bcrypt's standard encoded form, or an error if the
// plaintext exceeds bcrypt's 72-byte limit.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the given bcrypt digest.
//
// The comparison is performed by bcrypt in constant time relative to the
// digest. Any parse or mismatch error yields false; callers never learn
// which check failed.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
