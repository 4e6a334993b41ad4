package needle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/needle-ai/needle-go/v1/observability"
	"github.com/needle-ai/needle-go/v1/tracer"
)

const (
	apiKeyHeader    = "x-api-key"
	requestIDHeader = "X-Request-Id"
	contentTypeJSON = "application/json"

	componentName = "needle"
)

// session is the state shared by all sub-clients of one Client: the HTTP
// client, the auth headers and the optional logging, tracing and
// observability hooks.
type session struct {
	cfg        Config
	httpClient *http.Client
	headers    http.Header

	logger   Logger
	observer observability.Observer
	tracer   *tracer.Tracer
}

// call describes one API request.
type call struct {
	op       string
	method   string
	url      string
	resource string
	body     any
}

// envelope is the shape of every API response.
type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

func newSession(cfg Config) *session {
	headers := http.Header{}
	headers.Set("Accept", contentTypeJSON)
	if cfg.APIKey != "" {
		headers.Set(apiKeyHeader, cfg.APIKey)
	}

	return &session{
		cfg:        cfg,
		httpClient: newHTTPClient(cfg.Timeout),
		headers:    headers,
		logger:     cfg.Logger,
	}
}

// newHTTPClient builds a keep-alive client whose transport emits an
// OpenTelemetry client span per request and propagates the trace context.
func newHTTPClient(timeout time.Duration) *http.Client {
	var base http.RoundTripper = http.DefaultTransport
	if dt, ok := http.DefaultTransport.(*http.Transport); ok {
		base = dt.Clone()
	}

	return &http.Client{
		Timeout: timeout,
		Transport: otelhttp.NewTransport(base,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "needle " + r.Method + " " + r.URL.Path
			}),
		),
	}
}

// do performs c and decodes the "result" member of the response into out.
func (s *session) do(ctx context.Context, c call, out any) (err error) {
	start := time.Now()
	requestID := uuid.NewString()

	var (
		statusCode int
		size       int64
	)

	if s.tracer != nil {
		var span trace.Span
		ctx, span = s.tracer.StartSpan(ctx, componentName+"."+c.op)
		defer func() {
			s.tracer.SetAttributes(span, map[string]interface{}{
				"needle.operation":          c.op,
				"needle.resource":           c.resource,
				"needle.request_id":         requestID,
				"http.request.method":       c.method,
				"http.response.status_code": statusCode,
			})
			if err != nil {
				s.tracer.RecordErrorOnSpan(span, err)
			}
			span.End()
		}()
	}

	defer func() {
		s.report(ctx, c, requestID, statusCode, size, time.Since(start), err)
	}()

	statusCode, size, err = s.roundTrip(ctx, c, requestID, out)
	return err
}

func (s *session) roundTrip(ctx context.Context, c call, requestID string, out any) (int, int64, error) {
	var body io.Reader = http.NoBody
	if c.body != nil {
		data, err := json.Marshal(c.body)
		if err != nil {
			return 0, 0, fmt.Errorf("needle: %s: encode request: %w", c.op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, c.url, body)
	if err != nil {
		return 0, 0, fmt.Errorf("needle: %s: build request: %w", c.op, err)
	}

	for key := range s.headers {
		req.Header.Set(key, s.headers.Get(key))
	}
	if c.body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set(requestIDHeader, requestID)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, 0, &TransportError{Op: c.op, Method: c.method, URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, int64(len(raw)), &TransportError{Op: c.op, Method: c.method, URL: c.url, Err: err}
	}

	return resp.StatusCode, int64(len(raw)), decodeEnvelope(c.op, resp.StatusCode, raw, out)
}

// decodeEnvelope maps a response body onto out or onto a typed error.
// Status >= 400 yields the server's *Error; a missing error object is a
// protocol violation reported as *DecodeError, never a made-up *Error.
func decodeEnvelope(op string, statusCode int, raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &DecodeError{Op: op, StatusCode: statusCode, Err: err}
	}

	if statusCode >= http.StatusBadRequest {
		if env.Error == nil {
			return &DecodeError{Op: op, StatusCode: statusCode, Err: ErrMissingErrorBody}
		}
		return env.Error
	}

	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return &DecodeError{Op: op, StatusCode: statusCode, Err: ErrMissingResult}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return &DecodeError{Op: op, StatusCode: statusCode, Err: err}
	}
	return nil
}
