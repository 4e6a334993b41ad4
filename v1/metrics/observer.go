package metrics

import (
	"fmt"

	"github.com/needle-ai/needle-go/v1/observability"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

var _ observability.Observer = (*Metrics)(nil)

// ObserveOperation records one client operation. The "code" label is taken
// from the "status_code" metadata entry; operations that never got a
// response are recorded with code "0".
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	status := statusSuccess
	if op.Error != nil {
		status = statusError
	}

	code := "0"
	if v, ok := op.Metadata["status_code"]; ok {
		code = fmt.Sprint(v)
	}

	m.requestsTotal.WithLabelValues(op.Component, op.Operation, status, code).Inc()
	m.requestDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
	if op.Size > 0 {
		m.responseBytes.WithLabelValues(op.Component, op.Operation).Add(float64(op.Size))
	}
}
