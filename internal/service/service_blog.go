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

const (
	// defaultSlug replaces a title that has no slug-able characters.
	defaultSlug = "post"

	// slugSuffixLength is the number of hex characters appended to a
	// colliding slug.
	slugSuffixLength = 6
)

type blogService struct {
	posts store.BlogPostRepository
	users store.UserRepository

	validator validators.Validator
	sanitizer Sanitizer
	ids       IDGenerator
	now       func() time.Time

	maxSlugAttempts int

	logger *logger.Logger
}

// NewBlogService constructs a [BlogService]. Post bodies are stored as
// written; returned posts carry a bluemonday-sanitized copy in ContentHTML.
func NewBlogService(posts store.BlogPostRepository, users store.UserRepository, cfg config.Blog, logger *logger.Logger) BlogService {
	return &blogService{
		posts:           posts,
		users:           users,
		validator:       validators.NewBlogPostValidator(),
		sanitizer:       utils.NewHTMLSanitizer(),
		ids:             utils.NewUUIDGenerator(),
		now:             time.Now,
		maxSlugAttempts: max(cfg.MaxSlugAttempts, 1),
		logger:          logger,
	}
}

// Create stores a new post of authorID with a slug derived from the title.
//
// When the slug is taken a random suffix is appended and the insert is
// retried, up to maxSlugAttempts inserts in total; after that
// [ErrSlugConflict] is returned.
func (b *blogService) Create(ctx context.Context, authorID string, in models.BlogPostInput) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	in = b.clean(in)
	if err := b.validator.Validate(ctx, in); err != nil {
		return models.BlogPost{}, validationError(err)
	}

	if _, err := b.users.FindUserByID(ctx, authorID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "*blogService.Create").Str("author_id", authorID).Msg("author does not exist")
			return models.BlogPost{}, ErrAuthorNotFound
		}
		log.Err(err).Str("func", "*blogService.Create").Msg("author lookup failed")
		return models.BlogPost{}, fmt.Errorf("author lookup failed: %w", err)
	}

	post := models.BlogPost{
		Title:       in.Title,
		Content:     in.Content,
		IsPublished: in.Published(),
		CreatedAt:   b.now().UTC(),
		AuthorID:    authorID,
	}

	created, err := b.withUniqueSlug(ctx, in.Title, func(slug string) (models.BlogPost, error) {
		post.Slug = slug
		return b.posts.CreatePost(ctx, post)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlugConflict):
			return models.BlogPost{}, err
		case errors.Is(err, store.ErrUserNotFound):
			return models.BlogPost{}, ErrAuthorNotFound
		}
		log.Err(err).Str("func", "*blogService.Create").Msg("post creation failed")
		return models.BlogPost{}, fmt.Errorf("post creation failed: %w", err)
	}

	log.Info().Str("func", "*blogService.Create").Int64("post_id", created.ID).Str("slug", created.Slug).Msg("post created")

	return b.render(created), nil
}

// Update overwrites title, content and visibility of a post owned by
// requesterID. The slug is kept unless in.RegenerateSlug is set. An omitted
// isPublished keeps the current visibility.
func (b *blogService) Update(ctx context.Context, requesterID string, postID int64, in models.BlogPostInput) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	post, err := b.loadOwned(ctx, requesterID, postID)
	if err != nil {
		return models.BlogPost{}, err
	}

	in = b.clean(in)
	if err = b.validator.Validate(ctx, in); err != nil {
		return models.BlogPost{}, validationError(err)
	}

	updatedAt := b.now().UTC()
	post.Title = in.Title
	post.Content = in.Content
	if in.IsPublished != nil {
		post.IsPublished = *in.IsPublished
	}
	post.UpdatedAt = &updatedAt

	var updated models.BlogPost
	if in.RegenerateSlug {
		updated, err = b.withUniqueSlug(ctx, in.Title, func(slug string) (models.BlogPost, error) {
			post.Slug = slug
			return b.posts.UpdatePost(ctx, post)
		})
	} else {
		updated, err = b.posts.UpdatePost(ctx, post)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrSlugConflict):
			return models.BlogPost{}, err
		case errors.Is(err, store.ErrPostNotFound):
			return models.BlogPost{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*blogService.Update").Int64("post_id", postID).Msg("post update failed")
		return models.BlogPost{}, fmt.Errorf("post update failed: %w", err)
	}

	return b.render(updated), nil
}

// Delete removes a post owned by requesterID.
func (b *blogService) Delete(ctx context.Context, requesterID string, postID int64) error {
	if _, err := b.loadOwned(ctx, requesterID, postID); err != nil {
		return err
	}

	if err := b.posts.DeletePost(ctx, postID, requesterID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return ErrPostNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.Delete").Int64("post_id", postID).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*blogService.Delete").Int64("post_id", postID).Msg("post deleted")
	return nil
}

// List returns published posts and the viewer's drafts, newest first.
func (b *blogService) List(ctx context.Context, filter models.ListPostsFilter) ([]models.BlogPost, error) {
	posts, err := b.posts.ListPublishedOrOwned(ctx, filter.ViewerID, filter.OnlyOwned)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.List").Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	for i := range posts {
		posts[i] = b.render(posts[i])
	}
	return posts, nil
}

// GetBySlug returns a post visible to viewerID. Drafts of other authors are
// reported as [ErrPostNotFound].
func (b *blogService) GetBySlug(ctx context.Context, viewerID, slug string) (models.BlogPost, error) {
	if !utils.IsSlug(slug) {
		return models.BlogPost{}, ErrPostNotFound
	}

	post, err := b.posts.GetPostBySlug(ctx, slug)
	return b.visible(ctx, viewerID, post, err)
}

// GetByID returns a post visible to viewerID. Drafts of other authors are
// reported as [ErrPostNotFound].
func (b *blogService) GetByID(ctx context.Context, viewerID string, postID int64) (models.BlogPost, error) {
	post, err := b.posts.GetPostByID(ctx, postID)
	return b.visible(ctx, viewerID, post, err)
}

func (b *blogService) visible(ctx context.Context, viewerID string, post models.BlogPost, err error) (models.BlogPost, error) {
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.BlogPost{}, ErrPostNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.visible").Msg("post lookup failed")
		return models.BlogPost{}, fmt.Errorf("post lookup failed: %w", err)
	}

	if !post.VisibleTo(viewerID) {
		return models.BlogPost{}, ErrPostNotFound
	}
	return b.render(post), nil
}

// loadOwned fetches postID and checks that requesterID wrote it. Ownership
// is checked for drafts as well, so a foreign draft yields [ErrNotPostAuthor].
func (b *blogService) loadOwned(ctx context.Context, requesterID string, postID int64) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	post, err := b.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.BlogPost{}, ErrPostNotFound
		}
		log.Err(err).Str("func", "*blogService.loadOwned").Int64("post_id", postID).Msg("post lookup failed")
		return models.BlogPost{}, fmt.Errorf("post lookup failed: %w", err)
	}

	if !post.OwnedBy(requesterID) {
		log.Warn().
			Str("func", "*blogService.loadOwned").
			Int64("post_id", postID).
			Str("requester_id", requesterID).
			Msg("requester is not the author")
		return models.BlogPost{}, ErrNotPostAuthor
	}

	return post, nil
}

// withUniqueSlug calls write with the slug of title and retries with a
// suffixed slug while the store reports it as taken.
func (b *blogService) withUniqueSlug(ctx context.Context, title string, write func(slug string) (models.BlogPost, error)) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	base := utils.ToSlug(title)
	if base == "" {
		base = defaultSlug
	}

	slug := base
	for attempt := 1; attempt <= b.maxSlugAttempts; attempt++ {
		post, err := write(slug)
		if !errors.Is(err, store.ErrSlugAlreadyExists) {
			return post, err
		}

		log.Debug().Str("func", "*blogService.withUniqueSlug").Str("slug", slug).Int("attempt", attempt).Msg("slug is taken")
		slug = base + "-" + b.ids.Short(slugSuffixLength)
	}

	log.Warn().Str("func", "*blogService.withUniqueSlug").Str("base", base).Msg("slug attempts exhausted")
	return models.BlogPost{}, ErrSlugConflict
}

// clean trims the title. Content is kept byte for byte.
func (b *blogService) clean(in models.BlogPostInput) models.BlogPostInput {
	in.Title = strings.TrimSpace(in.Title)
	return in
}

// render fills the sanitized HTML view of the stored body.
func (b *blogService) render(post models.BlogPost) models.BlogPost {
	post.ContentHTML = b.sanitizer.Sanitize(post.Content)
	return post
}
