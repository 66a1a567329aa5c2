package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	c := NewHTTPClient("http://localhost:8080", 3*time.Second)
	require.NotNil(t, c)
	require.NotNil(t, c.Client)

	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, "application/json", c.Header.Get("Accept"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	a := NewHTTPClient("http://a", 0)
	b := NewHTTPClient("http://b", 0)

	assert.NotSame(t, a.Client, b.Client)
}

func TestHTTPClient_WithBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)

	resp, err := c.WithBearer("abc.def.ghi").Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "Bearer abc.def.ghi", gotAuth)

	_, err = c.WithBearer("").Get("/")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}
