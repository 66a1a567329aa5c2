package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/yobo-blog/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTParams groups the settings shared by token generation and validation.
type JWTParams struct {
	// Issuer is the "iss" claim written into and required from every token.
	Issuer string

	// Audience is the "aud" claim written into and required from every token.
	Audience string

	// SignKey is the HMAC-SHA256 secret.
	SignKey string

	// TTL is how long a generated token stays valid.
	TTL time.Duration

	// Now returns the current time. Defaults to [time.Now].
	Now func() time.Time
}

func (p JWTParams) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for user.
//
// The token includes the following claims:
//   - sub:   user.UserID
//   - email: user.Email
//   - name:  user.FullName (omitted when empty)
//   - iss, aud from params
//   - iat:   now
//   - exp:   now + params.TTL
//   - jti:   a random UUID
//
// Returns an error if issuer, audience or sign key are empty, TTL is not
// positive, the user has no ID, or signing fails.
func GenerateJWTToken(params JWTParams, user models.User) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.SignKey == "" || params.TTL <= 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if user.UserID == "" {
		return models.Token{}, errors.New("cannot generate JWT Token for user without ID")
	}

	now := params.now()
	expiresAt := now.Add(params.TTL)

	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   user.UserID,
			Audience:  jwt.ClaimStrings{params.Audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		Email: user.Email,
		Name:  user.FullName,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
		Claims:       claims,
	}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - signature verification with params.SignKey, HS256 only
//   - "exp" presence and expiry
//   - "iss" equal to params.Issuer
//   - "aud" containing params.Audience
//   - non-empty "sub"
func ValidateAndParseJWTToken(tokenString string, params JWTParams) (models.Token, error) {
	var claims models.TokenClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(params.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	if !token.Valid {
		return models.Token{}, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		SignedString: tokenString,
		ExpiresAt:    claims.ExpiresAt.Time,
		Claims:       claims,
	}, nil
}
