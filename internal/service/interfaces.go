//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/yobo-blog/models"
)

// AuthService registers users, verifies credentials and issues session tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)

	// Me returns the current account data of userID.
	Me(ctx context.Context, userID string) (models.Principal, error)
}

// BlogService manages blog posts on behalf of an authenticated user.
// Drafts are visible to their author only; only the author may mutate a post.
type BlogService interface {
	Create(ctx context.Context, authorID string, in models.BlogPostInput) (models.BlogPost, error)
	Update(ctx context.Context, requesterID string, postID int64, in models.BlogPostInput) (models.BlogPost, error)
	Delete(ctx context.Context, requesterID string, postID int64) error

	List(ctx context.Context, filter models.ListPostsFilter) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, viewerID, slug string) (models.BlogPost, error)
	GetByID(ctx context.Context, viewerID string, postID int64) (models.BlogPost, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(user models.User) (models.Token, error)
	Parse(tokenString string) (models.Token, error)
}

// IDGenerator produces user identifiers and random slug suffixes.
type IDGenerator interface {
	Generate() string
	Short(n int) string
}

// Sanitizer cleans untrusted HTML.
type Sanitizer interface {
	Sanitize(raw string) string
}
