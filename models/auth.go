package models

import "time"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Email     string    `json:"email"`
	FullName  *string   `json:"fullName"`
}

// NewAuthResponse builds an [AuthResponse] for user from an issued token.
// An empty display name is rendered as JSON null.
func NewAuthResponse(user User, token Token) AuthResponse {
	var fullName *string
	if user.FullName != "" {
		name := user.FullName
		fullName = &name
	}

	return AuthResponse{
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt,
		Email:     user.Email,
		FullName:  fullName,
	}
}
