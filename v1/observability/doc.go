// Package observability defines the hook through which clients in this
// module report the operations they perform.
//
// A client accepts an optional Observer (see needle.Client.WithObserver).
// After each call the client builds an OperationContext and hands it to the
// observer, which can turn it into metrics, audit records or anything else.
// The metrics package ships a Prometheus-backed implementation:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "indexer"})
//	client = client.WithObserver(m)
//
// For ad-hoc use, ObserverFunc adapts a function:
//
//	client.WithObserver(observability.ObserverFunc(func(op observability.OperationContext) {
//		log.Printf("%s took %s", op.Operation, op.Duration)
//	}))
package observability
