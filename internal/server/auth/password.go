package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of plain. The digest is
// deliberately deterministic and unsalted: the stored value is compared for
// equality on login.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// CheckPassword reports whether plain hashes to digest, in constant time.
func CheckPassword(digest, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(HashPassword(plain))) == 1
}
