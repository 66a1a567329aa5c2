package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, rest, err := GetClientConfig([]string{"posts", "-mine"})
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Empty(t, cfg.Token)
		assert.Equal(t, []string{"posts", "-mine"}, rest)
	})

	t.Run("env wins over flags", func(t *testing.T) {
		t.Setenv("YOBO_SERVER_URL", "http://env:9000")
		t.Setenv("YOBO_TOKEN", "env-token")

		cfg, rest, err := GetClientConfig([]string{"-s", "http://flag:8000", "-timeout", "3s", "me"})
		require.NoError(t, err)

		assert.Equal(t, "http://env:9000", cfg.ServerURL)
		assert.Equal(t, "env-token", cfg.Token)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, []string{"me"}, rest)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := GetClientConfig([]string{"-nope"})
		assert.Error(t, err)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("YOBO_REQUEST_TIMEOUT", "soon")
		_, _, err := GetClientConfig(nil)
		assert.Error(t, err)
	})
}
