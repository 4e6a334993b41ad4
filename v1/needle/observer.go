package needle

import (
	"context"
	"time"

	"github.com/needle-ai/needle-go/v1/observability"
)

// report hands a finished call to the observer and the logger, if set.
func (s *session) report(ctx context.Context, c call, requestID string, statusCode int, size int64, duration time.Duration, err error) {
	metadata := map[string]interface{}{
		"method":     c.method,
		"request_id": requestID,
	}
	if statusCode != 0 {
		metadata["status_code"] = statusCode
	}

	if s.observer != nil {
		s.observer.ObserveOperation(observability.OperationContext{
			Component:   componentName,
			Operation:   c.op,
			Resource:    c.resource,
			SubResource: c.url,
			Duration:    duration,
			Error:       err,
			Size:        size,
			Metadata:    metadata,
		})
	}

	if s.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"operation":   c.op,
		"resource":    c.resource,
		"request_id":  requestID,
		"status_code": statusCode,
		"duration_ms": duration.Milliseconds(),
	}
	if err != nil {
		s.logger.WarnWithContext(ctx, "needle request failed", err, fields)
		return
	}
	s.logger.DebugWithContext(ctx, "needle request completed", nil, fields)
}
