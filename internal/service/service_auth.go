package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/store"
	"github.com/MKhiriev/yobo-blog/internal/utils"
	"github.com/MKhiriev/yobo-blog/internal/validators"
	"github.com/MKhiriev/yobo-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenIssuer signs and verifies session tokens.
	tokenIssuer TokenIssuer

	// validator checks e-mail syntax, display name and the password policy.
	validator validators.Validator

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	ids IDGenerator
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and TokenIssuer and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenIssuer TokenIssuer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
		validator:      validators.NewUserValidator(validators.PasswordPolicyFromConfig(cfg.Password)),
		bcryptCost:     cfg.BcryptCost,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new account and signs the user in.
//
// Steps, in order:
//  1. e-mail syntax and display name → [*ValidationError]
//  2. e-mail already taken → [ErrEmailAlreadyRegistered]
//  3. password policy → [*ValidationError] listing every violated rule
//  4. hash, persist (a concurrent registration of the same e-mail also
//     yields [ErrEmailAlreadyRegistered]) and issue a token
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req, validators.FieldEmail, validators.FieldFullName); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Register").Msg("invalid registration data")
		return models.AuthResponse{}, validationError(err)
	}

	email := strings.TrimSpace(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("func", "*authService.Register").Msg("email is already registered")
		return models.AuthResponse{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Register").Msg("user lookup failed")
		return models.AuthResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = a.validator.Validate(ctx, req, validators.FieldPassword); err != nil {
		log.Debug().Str("func", "*authService.Register").Msg("password rejected by policy")
		return models.AuthResponse{}, validationError(err)
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:          a.ids.Generate(),
		Email:           email,
		NormalizedEmail: models.NormalizeEmail(email),
		PasswordHash:    hash,
		FullName:        strings.TrimSpace(req.FullName),
		CreatedAt:       a.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Debug().Str("func", "*authService.Register").Msg("email registered concurrently")
			return models.AuthResponse{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", user.UserID).Msg("user registered")

	return a.respond(user)
}

// Login authenticates an existing user.
//
// An unknown e-mail and a wrong password both yield [ErrInvalidCredentials];
// the distinction is only visible in the logs.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info().Str("func", "*authService.Login").Msg("user not found")
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Str("func", "*authService.Login").Str("user_id", user.UserID).Msg("wrong password")
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.UserID).Msg("password verification failed")
		return models.AuthResponse{}, err
	}

	return a.respond(user)
}

// ParseToken validates a raw bearer token and returns its principal.
// Any failure is reported as [ErrInvalidToken].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Principal, error) {
	token, err := a.tokenIssuer.Parse(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		if errors.Is(err, ErrInvalidToken) {
			return models.Principal{}, err
		}
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token.Principal(), nil
}

// Me reloads the account of userID so that renamed users see fresh data.
func (a *authService) Me(ctx context.Context, userID string) (models.Principal, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Principal{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Me").Msg("user lookup failed")
		return models.Principal{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return models.Principal{
		UserID:   user.UserID,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

func (a *authService) respond(user models.User) (models.AuthResponse, error) {
	token, err := a.tokenIssuer.Issue(user)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.respond").Str("user_id", user.UserID).Msg("token creation failed")
		return models.AuthResponse{}, err
	}

	return models.NewAuthResponse(user, token), nil
}
