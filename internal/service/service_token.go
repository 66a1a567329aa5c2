package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/utils"
	"github.com/MKhiriev/yobo-blog/models"
)

// tokenIssuer issues HS256 session tokens with the configured issuer,
// audience and lifetime.
type tokenIssuer struct {
	params utils.JWTParams
}

// NewTokenIssuer constructs a [TokenIssuer] from the application config.
// now may be nil, in which case [time.Now] is used.
func NewTokenIssuer(cfg config.App, now func() time.Time) TokenIssuer {
	return &tokenIssuer{
		params: utils.JWTParams{
			Issuer:   cfg.TokenIssuer,
			Audience: cfg.TokenAudience,
			SignKey:  cfg.TokenSignKey,
			TTL:      cfg.TokenTTL(),
			Now:      now,
		},
	}
}

func (i *tokenIssuer) Issue(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(i.params, user)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// Parse verifies tokenString. Every failure is reported as [ErrInvalidToken]
// with the cause attached.
func (i *tokenIssuer) Parse(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, i.params)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token, nil
}
