package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt digest from the raw password.
//
// cost is the bcrypt work factor; values outside the supported range fall
// back to bcrypt.DefaultCost. The returned digest embeds its own salt and
// cost, so no separate salt storage is needed.
//
// Returns an error only if the bcrypt implementation itself fails (e.g. the
// password exceeds the 72-byte bcrypt input limit).
func HashPassword(rawPassword string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(rawPassword), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether rawPassword matches the stored bcrypt digest.
//
// Any failure — wrong password, malformed digest, empty input — yields
// false. A mismatch is a normal outcome, not an error, so callers never
// need to branch on an error value for a wrong password.
func CheckPassword(rawPassword, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(rawPassword)) == nil
}
