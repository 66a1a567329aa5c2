package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/MKhiriev/yobo-blog/internal/utils"
	"github.com/MKhiriev/yobo-blog/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The base URL gets an http:// scheme when none is given. cfg.Token, when
// set, is used for authenticated calls.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// Register POSTs to /api/auth/register and stores the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&authResp).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

// Login POSTs to /api/auth/login and stores the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&authResp).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(authResp.Token)
	return authResp, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.Principal, error) {
	var principal models.Principal

	resp, err := h.authedRequest(ctx).SetResult(&principal).Get("/api/auth/me")
	if err != nil {
		return models.Principal{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Principal{}, err
	}

	return principal, nil
}

func (h *httpServerAdapter) ListPosts(ctx context.Context, onlyOwned bool) ([]models.BlogPost, error) {
	var posts []models.BlogPost

	req := h.authedRequest(ctx).SetResult(&posts)
	if onlyOwned {
		req.SetQueryParam("mine", "true")
	}

	resp, err := req.Get("/api/blog")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, postID int64) (models.BlogPost, error) {
	return h.getPost(ctx, "/api/blog/{id}", "id", strconv.FormatInt(postID, 10))
}

func (h *httpServerAdapter) GetPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	return h.getPost(ctx, "/api/blog/slug/{slug}", "slug", slug)
}

func (h *httpServerAdapter) getPost(ctx context.Context, path, param, value string) (models.BlogPost, error) {
	var post models.BlogPost

	resp, err := h.authedRequest(ctx).
		SetPathParam(param, value).
		SetResult(&post).
		Get(path)
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BlogPost{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, in models.BlogPostInput) (models.BlogPost, error) {
	var post models.BlogPost

	resp, err := h.authedRequest(ctx).
		SetBody(in).
		SetResult(&post).
		Post("/api/blog")
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BlogPost{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) UpdatePost(ctx context.Context, postID int64, in models.BlogPostInput) (models.BlogPost, error) {
	var post models.BlogPost

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetBody(in).
		SetResult(&post).
		Put("/api/blog/{id}")
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("update post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BlogPost{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, postID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		Delete("/api/blog/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.WithBearer(h.Token()).SetContext(ctx)
}
