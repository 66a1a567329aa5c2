package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().Get("/api/blog")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL that speaks JSON.
//
// A non-positive timeout leaves resty's default (no timeout) in place.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// WithBearer returns a request pre-populated with an Authorization header
// when token is non-empty.
func (c *HTTPClient) WithBearer(token string) *resty.Request {
	req := c.R()
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}
