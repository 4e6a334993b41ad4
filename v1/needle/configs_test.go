package needle

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSearchURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "production", in: "https://needle-ai.com", want: "https://search.needle-ai.com"},
		{name: "port and path kept", in: "http://localhost:8080/prefix", want: "http://search.localhost:8080/prefix"},
		{name: "subdomain", in: "https://staging.needle-ai.com", want: "https://search.staging.needle-ai.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MakeSearchURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMakeSearchURLWithoutHost(t *testing.T) {
	for _, in := range []string{"", "needle-ai.com", "not a url", "://missing-scheme"} {
		_, err := MakeSearchURL(in)
		assert.ErrorIs(t, err, ErrInvalidURL, "input %q", in)
	}
}

func TestResolveDefaults(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	cfg, err := Config{}.Resolve()
	require.NoError(t, err)

	assert.Equal(t, DefaultURL, cfg.URL)
	assert.Equal(t, "https://search.needle-ai.com", cfg.SearchURL)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 120*time.Second, cfg.Timeout)
}

func TestResolveKeepsExplicitValues(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	in := Config{
		APIKey:    "explicit",
		URL:       "https://eu.needle-ai.com",
		SearchURL: "http://127.0.0.1:9999/",
		Timeout:   5 * time.Second,
	}
	cfg, err := in.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "explicit", cfg.APIKey)
	assert.Equal(t, "https://eu.needle-ai.com", cfg.URL)
	assert.Equal(t, "http://127.0.0.1:9999/", cfg.SearchURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestResolveDerivesSearchURLFromCustomBase(t *testing.T) {
	cfg, err := Config{URL: "https://eu.needle-ai.com"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "https://search.eu.needle-ai.com", cfg.SearchURL)
}

func TestResolveFailsFastOnInvalidURL(t *testing.T) {
	_, err := Config{URL: "needle-ai.com"}.Resolve()
	assert.True(t, errors.Is(err, ErrInvalidURL))

	_, err = NewClient(Config{URL: "needle-ai.com"})
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestResolveSkipsDerivationWhenSearchURLGiven(t *testing.T) {
	cfg, err := Config{URL: "needle-ai.com", SearchURL: "https://search.example.com"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "https://search.example.com", cfg.SearchURL)
}

func TestNewConfigFromEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")
	t.Setenv(URLEnv, "https://eu.needle-ai.com")
	t.Setenv(SearchURLEnv, "")
	t.Setenv(TimeoutEnv, "30")

	cfg := NewConfig()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "https://eu.needle-ai.com", cfg.URL)
	assert.Empty(t, cfg.SearchURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestNewConfigIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv(TimeoutEnv, "soon")
	assert.Zero(t, NewConfig().Timeout)

	t.Setenv(TimeoutEnv, "-3")
	assert.Zero(t, NewConfig().Timeout)
}

func TestNewClientReadsEnvironmentOnce(t *testing.T) {
	t.Setenv(APIKeyEnv, "first")

	client, err := NewClient(Config{})
	require.NoError(t, err)

	t.Setenv(APIKeyEnv, "second")
	assert.Equal(t, "first", client.Config().APIKey)
	assert.Equal(t, "first", client.session.headers.Get(apiKeyHeader))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	doc := `
api_key: file-key
url: https://eu.needle-ai.com
search_url: https://search.internal
timeout: 30s
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "https://eu.needle-ai.com", cfg.URL)
	assert.Equal(t, "https://search.internal", cfg.SearchURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfigFallsBackToEnvironmentKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	cfg, err := LoadConfig(strings.NewReader("url: https://needle-ai.com\n"))
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)

	cfg, err = LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("timeout: [1, 2"))
	assert.Error(t, err)
}
