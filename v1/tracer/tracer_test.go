package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()

	rec := tracetest.NewSpanRecorder()
	tr, err := NewClient(Config{ServiceName: "test"}, nil, sdktrace.WithSpanProcessor(rec))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Shutdown(context.Background()) })
	return tr, rec
}

func TestStartSpanRecordsErrorAndAttributes(t *testing.T) {
	tr, rec := newTestTracer(t)

	_, span := tr.StartSpan(context.Background(), "needle.collections.get")
	tr.SetAttributes(span, map[string]interface{}{
		"collection.id": "clt_1",
		"http.status":   404,
		"retry":         false,
		"other":         []string{"x"},
	})
	tr.RecordErrorOnSpan(span, errors.New("not found"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "needle.collections.get", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String("collection.id", "clt_1"))
	assert.Contains(t, ended[0].Attributes(), attribute.Int("http.status", 404))
	assert.Contains(t, ended[0].Attributes(), attribute.Bool("retry", false))
	assert.Contains(t, ended[0].Attributes(), attribute.String("other", "[x]"))
}

func TestCarrierRoundTrip(t *testing.T) {
	tr, _ := newTestTracer(t)

	ctx, span := tr.StartSpan(context.Background(), "parent")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	restored := tr.SetCarrierOnContext(context.Background(), carrier)
	_, child := tr.StartSpan(restored, "child")
	defer child.End()

	assert.Equal(t, span.SpanContext().TraceID(), child.SpanContext().TraceID())
}

func TestShutdownNilTracer(t *testing.T) {
	var tr *Tracer
	assert.NoError(t, tr.Shutdown(context.Background()))
}
