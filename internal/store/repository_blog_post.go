package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/models"
	sq "github.com/Masterminds/squirrel"
)

// blogPostRepository is the SQL implementation of [BlogPostRepository]
// over the "blog_posts" table.
type blogPostRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlogPostRepository constructs a [BlogPostRepository] backed by db.
func NewBlogPostRepository(db *DB, logger *logger.Logger) BlogPostRepository {
	logger.Debug().Msg("creating blog post repository")
	return &blogPostRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post and reads it back together with the author fields.
func (p *blogPostRepository) CreatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.CreatePost").Msg("failed to build query")
		return models.BlogPost{}, err
	}

	var id int64
	if err = p.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if mapped := p.mapWriteError(err); mapped != nil {
			log.Debug().Err(err).
				Str("func", "*blogPostRepository.CreatePost").
				Str("slug", post.Slug).
				Msg("post rejected by constraint")
			return models.BlogPost{}, mapped
		}

		log.Err(err).Str("func", "*blogPostRepository.CreatePost").Msg("error inserting post")
		return models.BlogPost{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return p.GetPostByID(ctx, id)
}

// GetPostByID returns the post with postID.
func (p *blogPostRepository) GetPostByID(ctx context.Context, postID int64) (models.BlogPost, error) {
	return p.getPost(ctx, "*blogPostRepository.GetPostByID", sq.Eq{"p.id": postID})
}

// GetPostBySlug returns the post with slug.
func (p *blogPostRepository) GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	return p.getPost(ctx, "*blogPostRepository.GetPostBySlug", sq.Eq{"p.slug": slug})
}

func (p *blogPostRepository) getPost(ctx context.Context, funcName string, where sq.Eq) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(p.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.BlogPost{}, err
	}

	post, err := scanPost(p.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.BlogPost{}, ErrPostNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error querying post")
		return models.BlogPost{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// ListPublishedOrOwned returns the posts visible to viewerID, newest first.
func (p *blogPostRepository) ListPublishedOrOwned(ctx context.Context, viewerID string, onlyOwned bool) ([]models.BlogPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(p.builder, viewerID, onlyOwned)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.ListPublishedOrOwned").Msg("failed to build query")
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*blogPostRepository.ListPublishedOrOwned").
			Str("viewer_id", viewerID).
			Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.BlogPost, 0, 16)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*blogPostRepository.ListPublishedOrOwned").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*blogPostRepository.ListPublishedOrOwned").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// UpdatePost overwrites the mutable fields of the post and reads it back.
func (p *blogPostRepository) UpdatePost(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(p.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.UpdatePost").Msg("failed to build query")
		return models.BlogPost{}, err
	}

	res, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := p.mapWriteError(err); mapped != nil {
			return models.BlogPost{}, mapped
		}

		log.Err(err).Str("func", "*blogPostRepository.UpdatePost").Int64("post_id", post.ID).Msg("error updating post")
		return models.BlogPost{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = expectAffected(res); err != nil {
		return models.BlogPost{}, err
	}

	return p.GetPostByID(ctx, post.ID)
}

// DeletePost removes the post with postID authored by authorID.
func (p *blogPostRepository) DeletePost(ctx context.Context, postID int64, authorID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(p.builder, postID, authorID)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.DeletePost").Msg("failed to build query")
		return err
	}

	res, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*blogPostRepository.DeletePost").Int64("post_id", postID).Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res)
}

// mapWriteError converts constraint violations into domain errors.
// It returns nil for errors it does not recognise.
func (p *blogPostRepository) mapWriteError(err error) error {
	switch p.classify(err) {
	case UniqueViolation:
		return ErrSlugAlreadyExists
	case ForeignKeyViolation:
		return ErrUserNotFound
	}
	return nil
}

func expectAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.BlogPost, error) {
	var (
		post           models.BlogPost
		updatedAt      sql.NullTime
		authorEmail    sql.NullString
		authorFullName sql.NullString
	)

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.IsPublished,
		&post.CreatedAt,
		&updatedAt,
		&post.AuthorID,
		&authorEmail,
		&authorFullName,
	)
	if err != nil {
		return models.BlogPost{}, err
	}

	if updatedAt.Valid {
		post.UpdatedAt = &updatedAt.Time
	}
	if authorEmail.Valid {
		post.AuthorEmail = &authorEmail.String
	}
	if authorFullName.Valid {
		post.AuthorFullName = &authorFullName.String
	}

	return post, nil
}
