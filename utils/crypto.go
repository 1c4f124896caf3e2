package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Password hashing policies. sha256 produces the hex digests the legacy
// credential documents already contain; bcrypt is the salted alternative.
const (
	HashPolicySHA256 = "sha256"
	HashPolicyBcrypt = "bcrypt"
)

// Crypto utilities for sessions and passwords
func GenerateSessionID() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to time-based ID if crypto random fails
		LogError("Failed to generate crypto random session ID: %v", err)
		return hex.EncodeToString([]byte(fmt.Sprintf("%d", time.Now().UnixNano())))
	}
	return hex.EncodeToString(bytes)
}

func HashPassword(password, policy string) (string, error) {
	if len(password) < 6 {
		return "", fmt.Errorf("password must be at least 6 characters")
	}

	switch policy {
	case HashPolicyBcrypt:
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}
		return string(hash), nil
	case HashPolicySHA256, "":
		sum := sha256.Sum256([]byte(password))
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("unknown password hash policy: %s", policy)
	}
}

// CheckPassword verifies a password against a stored hash. Bcrypt hashes are
// recognized by their prefix, everything else is treated as a sha256 hex
// digest so documents written under either policy keep verifying.
func CheckPassword(hashedPassword, password string) bool {
	if strings.HasPrefix(hashedPassword, "$2") {
		err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
		return err == nil
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]) == hashedPassword
}
