package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen        = 32
	keyLen         = 32
	pbkdf2Rounds   = 10000
	encodedHashLen = saltLen + keyLen
)

// HashPassword derives a PBKDF2-SHA256 key from the password under a fresh
// random salt and returns base64(salt || key).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Rounds, keyLen, sha256.New)
	return base64.StdEncoding.EncodeToString(append(salt, key...)), nil
}

// VerifyPassword re-derives the key under the stored salt and compares in
// constant time.
func VerifyPassword(password, encoded string) bool {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) != encodedHashLen {
		return false
	}
	salt, stored := raw[:saltLen], raw[saltLen:]
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Rounds, keyLen, sha256.New)
	return subtle.ConstantTimeCompare(key, stored) == 1
}
