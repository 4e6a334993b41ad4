// Package needle is a typed client for the Needle document indexing and
// semantic search API.
//
// # Overview
//
// A Client groups three sub-clients that share one HTTP client and the
// x-api-key header:
//
//   - Client.Collections: create, get and list collections, search them,
//     read their statistics
//   - Client.Collections.Files: add files to a collection and list them
//   - Client.Files: obtain download URLs
//
// Every method performs exactly one HTTP request. Nothing is cached; a
// repeated call always fetches fresh state from the server.
//
//	client, err := needle.NewClient(needle.NewConfig())
//	if err != nil {
//		return err
//	}
//
//	c, err := client.Collections.Create(ctx, "handbook", nil)
//	files, err := client.Collections.Files.Add(ctx, c.ID, []needle.FileToAdd{
//		{Name: "handbook.pdf", URL: "https://example.com/handbook.pdf"},
//	})
//	// files[0].Status == needle.StatusPending until the server has indexed it
//
//	results, err := client.Collections.Search(ctx, needle.SearchParams{
//		CollectionID: c.ID,
//		Text:         "vacation policy",
//		TopK:         needle.Ptr(5),
//	})
//
// # Configuration
//
// Config.Resolve applies the defaults:
//
//   - URL defaults to https://needle-ai.com
//   - APIKey defaults to NEEDLE_API_KEY, read when the client is created
//   - SearchURL defaults to URL with the host prefixed by "search.", e.g.
//     https://search.needle-ai.com; an explicit value is never modified
//   - Timeout defaults to 120 seconds per request
//
// NewConfig reads NEEDLE_API_KEY, NEEDLE_URL, NEEDLE_SEARCH_URL and
// NEEDLE_HTTP_TIMEOUT_SECONDS; LoadConfig reads the same settings from YAML.
//
// # Errors
//
// Failures come in three kinds:
//
//   - *Error: the API answered with status >= 400 and an error object, or the
//     client rejected the input (code 422) before sending anything
//   - *TransportError: no response was received (network, timeout,
//     cancellation)
//   - *DecodeError: a response arrived but did not follow the
//     {"result": ...} / {"error": ...} envelope; a 2xx response without
//     result wraps ErrMissingResult
//
// Use AsError, IsNotFound, IsValidationError and IsTransportError to tell
// them apart. There are no retries.
//
// # Observability
//
// Client.WithObserver reports every call as an observability.OperationContext
// (metrics.Metrics turns these into Prometheus series), Client.WithTracer
// wraps each call in a span, and Config.Logger receives a debug entry per
// call. Requests carry a fresh X-Request-Id.
//
// # Dependency Injection (Fx)
//
// FXModule provides *Client and the Collections, CollectionFiles and Files
// interfaces from a Config in the container.
package needle
