package needle

import (
	"fmt"
	"net/url"
	"strings"
)

// MakeSearchURL derives the search endpoint from the API base URL by
// prefixing its host with "search.":
//
//	https://needle-ai.com -> https://search.needle-ai.com
//
// Scheme, port and path are kept.
func MakeSearchURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, baseURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, baseURL)
	}

	u.Host = "search." + u.Host
	return u.String(), nil
}

// Ptr returns a pointer to v, for the optional SearchParams fields.
func Ptr[T any](v T) *T {
	return &v
}

// endpoint joins base with the API path, tolerating a trailing slash on base.
func endpoint(base string, path ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteString("/api/v1")
	for _, p := range path {
		b.WriteByte('/')
		b.WriteString(p)
	}
	return b.String()
}

// resourcePath escapes an identifier for use as a path segment.
func resourcePath(id string) string {
	return url.PathEscape(id)
}
