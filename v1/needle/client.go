package needle

import (
	"net/http"

	"github.com/needle-ai/needle-go/v1/observability"
	"github.com/needle-ai/needle-go/v1/tracer"
)

// Client is the entrypoint to the Needle API. Its sub-clients share one
// HTTP client and one set of auth headers.
//
// A Client is safe for concurrent use once configured. The With* setters
// are meant to be called right after NewClient, before the client is
// shared.
type Client struct {
	// Collections manages collections, their files and search.
	Collections *CollectionsClient

	// Files gives access to individual files.
	Files *FilesClient

	session *session
}

// NewClient resolves cfg (see Config.Resolve) and builds the client.
//
// Example:
//
//	client, err := needle.NewClient(needle.Config{APIKey: key})
//	if err != nil {
//	    return err
//	}
//	collections, err := client.Collections.List(ctx)
func NewClient(cfg Config) (*Client, error) {
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	s := newSession(resolved)

	return &Client{
		Collections: newCollectionsClient(s),
		Files:       newFilesClient(s),
		session:     s,
	}, nil
}

// Config returns the resolved configuration.
func (c *Client) Config() Config {
	return c.session.cfg
}

// WithObserver sets the observer notified after every API call and returns
// the client for chaining.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.session.observer = observer
	return c
}

// WithLogger replaces the logger given in Config.
func (c *Client) WithLogger(logger Logger) *Client {
	c.session.logger = logger
	return c
}

// WithTracer wraps every API call in a span started from t.
func (c *Client) WithTracer(t *tracer.Tracer) *Client {
	c.session.tracer = t
	return c
}

// WithHTTPClient replaces the HTTP client. The given client's own timeout
// and transport are used as they are.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	if httpClient != nil {
		c.session.httpClient = httpClient
	}
	return c
}

// Close releases idle keep-alive connections.
func (c *Client) Close() error {
	c.session.httpClient.CloseIdleConnections()
	return nil
}
