package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123!", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "Secret123!" {
		t.Fatal("hash must not equal the raw password")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	if err := VerifyPassword(hash, "Secret123!"); err != nil {
		t.Errorf("expected password to match, got: %v", err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("Secret123!", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	second, err := HashPassword("Secret123!", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	if err == nil {
		t.Fatal("expected error for password longer than 72 bytes")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("Secret123!", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	err = VerifyPassword(hash, "secret123!")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	err := VerifyPassword("not-a-bcrypt-hash", "whatever")
	if err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("malformed hash must not be reported as a mismatch")
	}
}

func TestNormalizeBcryptCost(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, bcrypt.DefaultCost},
		{1, bcrypt.MinCost},
		{bcrypt.MinCost, bcrypt.MinCost},
		{12, 12},
		{100, bcrypt.MaxCost},
	}

	for _, tt := range tests {
		if got := NormalizeBcryptCost(tt.in); got != tt.want {
			t.Errorf("NormalizeBcryptCost(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
