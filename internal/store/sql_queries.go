package store

import (
	"fmt"

	"github.com/MKhiriev/yobo-blog/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{
	"user_id",
	"email",
	"normalized_email",
	"password_hash",
	"full_name",
	"created_at",
}

// postColumns are read in the order expected by scanPost.
var postColumns = []string{
	"p.id",
	"p.title",
	"p.slug",
	"p.content",
	"p.is_published",
	"p.created_at",
	"p.updated_at",
	"p.author_id",
	"u.email",
	"NULLIF(u.full_name, '')",
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.NormalizedEmail, user.PasswordHash, user.FullName, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func selectPosts(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(postColumns...).
		From(models.BlogPost{}.TableName() + " p").
		LeftJoin(models.User{}.TableName() + " u ON u.user_id = p.author_id")
}

func buildGetPostQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query, args, err := selectPosts(b).Where(where).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListPostsQuery selects published posts plus the viewer's drafts, or
// only the viewer's posts when onlyOwned is set. Newest first; ties are
// broken by id so the order is stable.
func buildListPostsQuery(b sq.StatementBuilderType, viewerID string, onlyOwned bool) (string, []any, error) {
	var where sq.Sqlizer = sq.Or{
		sq.Eq{"p.is_published": true},
		sq.Eq{"p.author_id": viewerID},
	}
	if onlyOwned {
		where = sq.Eq{"p.author_id": viewerID}
	}

	query, args, err := selectPosts(b).
		Where(where).
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreatePostQuery(b sq.StatementBuilderType, post models.BlogPost) (string, []any, error) {
	query, args, err := b.Insert(post.TableName()).
		Columns("title", "slug", "content", "is_published", "created_at", "author_id").
		Values(post.Title, post.Slug, post.Content, post.IsPublished, post.CreatedAt, post.AuthorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePostQuery(b sq.StatementBuilderType, post models.BlogPost) (string, []any, error) {
	query, args, err := b.Update(post.TableName()).
		Set("title", post.Title).
		Set("slug", post.Slug).
		Set("content", post.Content).
		Set("is_published", post.IsPublished).
		Set("updated_at", post.UpdatedAt).
		Where(sq.Eq{"id": post.ID, "author_id": post.AuthorID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePostQuery(b sq.StatementBuilderType, postID int64, authorID string) (string, []any, error) {
	query, args, err := b.Delete(models.BlogPost{}.TableName()).
		Where(sq.Eq{"id": postID, "author_id": authorID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
