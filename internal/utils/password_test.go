package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("testPassword")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "testPassword" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "testPassword") {
		t.Error("expected hash to verify against the original password")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("testPassword")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	second, err := HashPassword("testPassword")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password must differ (random salt)")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("testPassword")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if CheckPassword(hash, "otherPassword") {
		t.Error("expected verification to fail for a different password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("not-a-bcrypt-hash", "testPassword") {
		t.Error("expected verification to fail for a malformed hash")
	}
}

func TestHashPassword_TooLongPassword(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 100))
	if err == nil {
		t.Error("expected error for password exceeding bcrypt's 72-byte limit")
	}
}
