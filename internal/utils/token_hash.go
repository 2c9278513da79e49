package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex SHA-256 digest of an opaque token.
// API tokens are stored only in this form.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareTokenHash reports whether token hashes to storedHash.
func CompareTokenHash(token string, storedHash string) bool {
	return HashToken(token) == storedHash
}
