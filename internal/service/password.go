package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func hashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// legacyDigest reproduces the unsalted SHA-256 hex scheme used before the
// bcrypt migration. Kept only so pre-migration cashier rows can still log in;
// verifyPassword upgrades them to bcrypt on first success.
func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// isLegacyHash detects a stored legacy digest: exactly 64 lowercase hex
// characters. bcrypt hashes always start with "$2" and are longer.
func isLegacyHash(stored string) bool {
	if len(stored) != 64 {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}

// verifyPassword checks password against the stored hash. needsUpgrade is
// true when the match came through the legacy scheme and the row should be
// re-hashed with bcrypt.
func verifyPassword(stored, password string) (ok, needsUpgrade bool) {
	if isLegacyHash(stored) {
		match := subtle.ConstantTimeCompare([]byte(stored), []byte(legacyDigest(password))) == 1
		return match, match
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
}
