package needle

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultURL is the production Needle API.
	DefaultURL = "https://needle-ai.com"

	// DefaultTimeout bounds every request, including reading the response.
	DefaultTimeout = 120 * time.Second

	APIKeyEnv    = "NEEDLE_API_KEY"
	URLEnv       = "NEEDLE_URL"
	SearchURLEnv = "NEEDLE_SEARCH_URL"
	TimeoutEnv   = "NEEDLE_HTTP_TIMEOUT_SECONDS"
)

// Config holds the settings of a Client. The zero value is usable: Resolve
// fills in the production URL, the derived search URL, the default timeout
// and the API key from NEEDLE_API_KEY.
type Config struct {
	// APIKey is sent as the x-api-key header.
	APIKey string `yaml:"api_key" envconfig:"NEEDLE_API_KEY"`

	// URL is the base URL of the API, without the /api/v1 suffix.
	URL string `yaml:"url" envconfig:"NEEDLE_URL"`

	// SearchURL serves collection search. When empty it is derived from URL
	// by prefixing the host with "search.". Set it explicitly to point
	// search at a test server; an explicit value is used unchanged.
	SearchURL string `yaml:"search_url" envconfig:"NEEDLE_SEARCH_URL"`

	// Timeout applies to each request as a whole.
	Timeout time.Duration `yaml:"timeout"`

	// Logger receives a debug entry per completed call and a warning per
	// failed call. Optional.
	Logger Logger `yaml:"-"`
}

// Logger is the logging contract of the client; *logger.Logger satisfies it.
//
//go:generate mockgen -source=configs.go -destination=mock_logger.go -package=needle
type Logger interface {
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// NewConfig reads the configuration from the environment. The environment
// is read once, here; a Client never consults it again.
func NewConfig() Config {
	cfg := Config{
		APIKey:    os.Getenv(APIKeyEnv),
		URL:       os.Getenv(URLEnv),
		SearchURL: os.Getenv(SearchURLEnv),
	}
	if v := os.Getenv(TimeoutEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	return cfg
}

// LoadConfig decodes a YAML document such as
//
//	api_key: nk_live_...
//	url: https://needle-ai.com
//	timeout: 30s
//
// An empty api_key falls back to NEEDLE_API_KEY.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("needle: decode config: %w", err)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(APIKeyEnv)
	}
	return cfg, nil
}

// Resolve returns a copy of c with defaults applied. It fails with
// ErrInvalidURL when the search URL has to be derived from a URL without a
// host.
func (c Config) Resolve() (Config, error) {
	if c.URL == "" {
		c.URL = DefaultURL
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(APIKeyEnv)
	}
	if c.SearchURL == "" {
		searchURL, err := MakeSearchURL(c.URL)
		if err != nil {
			return Config{}, err
		}
		c.SearchURL = searchURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c, nil
}
