package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/yobo-blog/internal/service"
	"github.com/MKhiriev/yobo-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blogRouter(blog *mockBlogService) http.Handler {
	return newTestHandler(&service.Services{AuthService: acceptingAuth(), BlogService: blog}).Init()
}

func samplePost(id int64) models.BlogPost {
	return models.BlogPost{
		ID:          id,
		Title:       "Hello World",
		Slug:        "hello-world",
		Content:     "<p>hi</p>",
		IsPublished: true,
		CreatedAt:   time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		AuthorID:    testUserID,
	}
}

func TestBlogRoutes_RequireToken(t *testing.T) {
	router := blogRouter(&mockBlogService{})

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/blog"},
		{http.MethodPost, "/api/blog"},
		{http.MethodGet, "/api/blog/1"},
		{http.MethodGet, "/api/blog/slug/hello"},
		{http.MethodPut, "/api/blog/1"},
		{http.MethodDelete, "/api/blog/1"},
	} {
		rec := do(t, router, tc.method, tc.target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.target)
	}
}

func TestListPosts(t *testing.T) {
	var got models.ListPostsFilter
	router := blogRouter(&mockBlogService{
		listFunc: func(_ context.Context, filter models.ListPostsFilter) ([]models.BlogPost, error) {
			got = filter
			return nil, nil
		},
	})

	rec := do(t, router, http.MethodGet, "/api/blog", "", testToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, models.ListPostsFilter{ViewerID: testUserID}, got)

	rec = do(t, router, http.MethodGet, "/api/blog?mine=true", "", testToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got.OnlyOwned)

	rec = do(t, router, http.MethodGet, "/api/blog?mine=maybe", "", testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPost(t *testing.T) {
	router := blogRouter(&mockBlogService{
		getByIDFunc: func(_ context.Context, viewerID string, postID int64) (models.BlogPost, error) {
			if postID != 7 {
				return models.BlogPost{}, service.ErrPostNotFound
			}
			return samplePost(postID), nil
		},
		getBySlugFunc: func(_ context.Context, viewerID, slug string) (models.BlogPost, error) {
			if slug != "hello-world" {
				return models.BlogPost{}, service.ErrPostNotFound
			}
			return samplePost(7), nil
		},
	})

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"by id", "/api/blog/7", http.StatusOK},
		{"missing id", "/api/blog/8", http.StatusNotFound},
		{"non numeric id", "/api/blog/abc", http.StatusNotFound},
		{"negative id", "/api/blog/-1", http.StatusNotFound},
		{"by slug", "/api/blog/slug/hello-world", http.StatusOK},
		{"missing slug", "/api/blog/slug/other", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, tt.target, "", testToken)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var post models.BlogPost
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
				assert.Equal(t, int64(7), post.ID)
				assert.Equal(t, "hello-world", post.Slug)
			}
		})
	}
}

func TestCreatePost(t *testing.T) {
	var gotAuthor string
	var gotInput models.BlogPostInput
	router := blogRouter(&mockBlogService{
		createFunc: func(_ context.Context, authorID string, in models.BlogPostInput) (models.BlogPost, error) {
			gotAuthor, gotInput = authorID, in
			if in.Title == "" {
				return models.BlogPost{}, &service.ValidationError{Violations: []string{"title is required"}}
			}
			return samplePost(42), nil
		},
	})

	rec := do(t, router, http.MethodPost, "/api/blog", `{"title":"Hello World","content":"<p>hi</p>","isPublished":false}`, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/blog/42", rec.Header().Get("Location"))
	assert.Equal(t, testUserID, gotAuthor)
	require.NotNil(t, gotInput.IsPublished)
	assert.False(t, *gotInput.IsPublished)

	rec = do(t, router, http.MethodPost, "/api/blog", `{"content":"x"}`, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":["title is required"]}`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/blog", `not json`, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePost(t *testing.T) {
	router := blogRouter(&mockBlogService{
		updateFunc: func(_ context.Context, requesterID string, postID int64, in models.BlogPostInput) (models.BlogPost, error) {
			switch postID {
			case 1:
				post := samplePost(1)
				post.Title = in.Title
				return post, nil
			case 2:
				return models.BlogPost{}, service.ErrNotPostAuthor
			default:
				return models.BlogPost{}, service.ErrPostNotFound
			}
		},
	})

	body := `{"title":"Renamed","content":"body"}`

	rec := do(t, router, http.MethodPut, "/api/blog/1", body, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var post models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Renamed", post.Title)

	rec = do(t, router, http.MethodPut, "/api/blog/2", body, testToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/blog/3", body, testToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePost(t *testing.T) {
	router := blogRouter(&mockBlogService{
		deleteFunc: func(_ context.Context, requesterID string, postID int64) error {
			if postID == 1 {
				return nil
			}
			return service.ErrPostNotFound
		},
	})

	rec := do(t, router, http.MethodDelete, "/api/blog/1", "", testToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, router, http.MethodDelete, "/api/blog/2", "", testToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	metricsBody := do(t, router, http.MethodGet, "/metrics", "", "").Body.String()
	assert.Contains(t, metricsBody, `yobo_post_actions_total{action="delete"} 1`)
}
