package otp

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"
)

const (
	codeMin  = 100000
	codeSpan = 900000
)

// Generate returns a 6-digit decimal code drawn uniformly from
// [100000, 999999] using a cryptographically strong source.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(codeMin)).String(), nil
}

// Verify checks a submitted code against the stored one. The stored code must
// be present, unexpired and exactly equal to the trimmed submission.
func Verify(stored string, expires *time.Time, submitted string) bool {
	if stored == "" || expires == nil || submitted == "" {
		return false
	}
	if time.Now().After(*expires) {
		return false
	}
	return stored == strings.TrimSpace(submitted)
}
