// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client of the blog HTTP API.
//
// [ServerAdapter] hides the transport from callers. Non-2xx responses are
// mapped to the sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/yobo-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the blog server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or "".
	Token() string

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Me returns the account of the token holder.
	Me(ctx context.Context) (models.Principal, error)

	ListPosts(ctx context.Context, onlyOwned bool) ([]models.BlogPost, error)
	GetPost(ctx context.Context, postID int64) (models.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error)
	CreatePost(ctx context.Context, in models.BlogPostInput) (models.BlogPost, error)
	UpdatePost(ctx context.Context, postID int64, in models.BlogPostInput) (models.BlogPost, error)
	DeletePost(ctx context.Context, postID int64) error
}
