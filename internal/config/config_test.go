package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STUDYHALL_API_URL", "")
	t.Setenv("STUDYHALL_TOKEN", "")
	t.Setenv("STUDYHALL_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STUDYHALL_API_URL", "https://staging.example.com")
	t.Setenv("STUDYHALL_TOKEN", "tok-123")
	t.Setenv("STUDYHALL_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.APIBaseURL)
	assert.Equal(t, "tok-123", cfg.Token)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestLoad_RejectsMalformedURL(t *testing.T) {
	t.Setenv("STUDYHALL_API_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsBadTimeout(t *testing.T) {
	t.Setenv("STUDYHALL_API_URL", "")
	t.Setenv("STUDYHALL_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
