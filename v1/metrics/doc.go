// Package metrics exposes Prometheus metrics for the clients in this module.
//
// *Metrics implements observability.Observer: attach it to a Needle client
// and every API call increments requests_total and observes
// request_duration_seconds, labelled by component and operation.
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		Namespace:               "needle",
//		ServiceName:             "indexer",
//	})
//	go m.Server.ListenAndServe()
//
//	client, _ := needle.NewClient(needle.NewConfig())
//	client = client.WithObserver(m)
//
// Each Metrics owns its own registry; nothing is registered globally.
// Additional application metrics can be registered with CreateCounter,
// CreateHistogram and CreateGauge.
//
// # Configuration
//
//	METRICS_ADDRESS=":9090"
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE="needle"
//	METRICS_SERVICE_NAME="indexer"
package metrics
