package observability

import "time"

// Observer receives a notification for every operation a client performs.
// Implementations must be safe for concurrent use, since a single client
// may be shared between goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component is the client that performed the operation, e.g. "needle".
	Component string

	// Operation is the logical name of the call, e.g. "collections.search".
	Operation string

	// Resource is the primary identifier the operation acted on
	// (collection id, file id). Empty for collection-wide calls.
	Resource string

	// SubResource carries additional context such as the endpoint host.
	SubResource string

	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is the number of response bytes read.
	Size int64

	Metadata map[string]interface{}
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
