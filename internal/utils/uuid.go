package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces user identifiers and short random tokens.
type UUIDGenerator struct {
}

// NewUUIDGenerator constructs a [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// Short returns n lowercase hex characters taken from a random UUIDv4.
// n is clamped to the range [1, 32].
func (g *UUIDGenerator) Short(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	switch {
	case n < 1:
		n = 1
	case n > len(hex):
		n = len(hex)
	}
	return hex[:n]
}
