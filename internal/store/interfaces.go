//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/yobo-blog/models"
)

// UserRepository is the sole writer of user state.
type UserRepository interface {
	// CreateUser inserts user. A second account with the same normalized
	// e-mail fails with [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by the normalized form of email.
	// Returns [ErrUserNotFound] when there is no such user.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when there is no such user.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// BlogPostRepository is the sole writer of post state. Every read joins the
// author's e-mail and display name.
type BlogPostRepository interface {
	// CreatePost inserts post and returns it with the assigned ID.
	// A taken slug fails with [ErrSlugAlreadyExists]; an unknown author with
	// [ErrUserNotFound].
	CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error)

	// GetPostByID returns [ErrPostNotFound] when there is no such post.
	GetPostByID(ctx context.Context, postID int64) (models.BlogPost, error)

	// GetPostBySlug returns [ErrPostNotFound] when there is no such post.
	GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error)

	// ListPublishedOrOwned returns published posts together with the
	// viewer's drafts, newest first. With onlyOwned set, only the viewer's
	// posts are returned.
	ListPublishedOrOwned(ctx context.Context, viewerID string, onlyOwned bool) ([]models.BlogPost, error)

	// UpdatePost overwrites title, slug, content, publication flag and
	// update time of the post with post.ID authored by post.AuthorID.
	// Returns [ErrPostNotFound] when no such row exists and
	// [ErrSlugAlreadyExists] when the new slug is taken.
	UpdatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error)

	// DeletePost removes the post with postID authored by authorID.
	// Returns [ErrPostNotFound] when nothing was deleted.
	DeletePost(ctx context.Context, postID int64, authorID string) error
}

// ErrorClassificator maps driver-specific errors onto an
// [ErrorClassification] so repositories stay independent of the SQL backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Pinger reports storage liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}
