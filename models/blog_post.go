package models

import "time"

// BlogPost is a single post as stored and returned by the API.
type BlogPost struct {
	// ID is the server-assigned, monotonically increasing identifier.
	ID int64 `json:"id"`

	// Title is the human readable title, at most 180 characters.
	Title string `json:"title"`

	// Slug is the URL-safe identifier derived from Title at creation.
	// It is globally unique and does not follow later title changes.
	Slug string `json:"slug"`

	// Content is the body exactly as the author wrote it.
	Content string `json:"content"`

	// ContentHTML is Content passed through the HTML sanitizer. It is
	// computed on read and never stored.
	ContentHTML string `json:"contentHtml"`

	// IsPublished reports whether the post is visible to every viewer.
	// Drafts are visible to their author only.
	IsPublished bool `json:"isPublished"`

	// CreatedAt is set once when the post is created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is nil until the first mutation and set on every mutation after.
	UpdatedAt *time.Time `json:"updatedAt"`

	// AuthorID references the owning user and never changes.
	AuthorID string `json:"authorId"`

	// AuthorEmail and AuthorFullName are joined from the author's account
	// on read.
	AuthorEmail    *string `json:"authorEmail"`
	AuthorFullName *string `json:"authorFullName"`
}

// TableName returns the name of the database table
// associated with the BlogPost model.
func (p BlogPost) TableName() string {
	return "blog_posts"
}

// VisibleTo reports whether viewerID may read the post.
func (p BlogPost) VisibleTo(viewerID string) bool {
	return p.IsPublished || p.AuthorID == viewerID
}

// OwnedBy reports whether userID is the author of the post.
func (p BlogPost) OwnedBy(userID string) bool {
	return p.AuthorID != "" && p.AuthorID == userID
}

// BlogPostInput is the body of POST /api/blog and PUT /api/blog/{id}.
type BlogPostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`

	// IsPublished defaults to true when omitted from the JSON body.
	IsPublished *bool `json:"isPublished"`

	// RegenerateSlug requests re-deriving the slug from the new title.
	// Ignored on create.
	RegenerateSlug bool `json:"regenerateSlug,omitempty"`
}

// Published resolves IsPublished, defaulting to true.
func (in BlogPostInput) Published() bool {
	if in.IsPublished == nil {
		return true
	}
	return *in.IsPublished
}

// ListPostsFilter narrows the post listing.
type ListPostsFilter struct {
	// ViewerID is the authenticated caller. Drafts are returned only when
	// they belong to the viewer.
	ViewerID string

	// OnlyOwned restricts the result to posts authored by the viewer.
	OnlyOwned bool
}
