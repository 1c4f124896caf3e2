package utils

import (
	"strings"
	"testing"
)

func TestHashPasswordSHA256(t *testing.T) {
	hash, err := HashPassword("secret123", HashPolicySHA256)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	// Hex sha256 digest, same shape as the legacy credential documents
	if len(hash) != 64 {
		t.Errorf("hash length = %d, want 64", len(hash))
	}

	again, _ := HashPassword("secret123", HashPolicySHA256)
	if hash != again {
		t.Error("sha256 hashing is not deterministic")
	}

	if !CheckPassword(hash, "secret123") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "secret124") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestHashPasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("secret123", HashPolicyBcrypt)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("bcrypt hash has unexpected form: %s", hash)
	}

	if !CheckPassword(hash, "secret123") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "secret124") {
		t.Error("CheckPassword accepted a wrong password")
	}
}

func TestHashPasswordTooShort(t *testing.T) {
	if _, err := HashPassword("abc", HashPolicySHA256); err == nil {
		t.Error("HashPassword should reject passwords under 6 characters")
	}
}

func TestHashPasswordUnknownPolicy(t *testing.T) {
	if _, err := HashPassword("secret123", "md5"); err == nil {
		t.Error("HashPassword should reject an unknown policy")
	}
}

func TestGenerateSessionID(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()

	if len(a) != 64 {
		t.Errorf("session ID length = %d, want 64", len(a))
	}
	if a == b {
		t.Error("two session IDs collide")
	}
}
