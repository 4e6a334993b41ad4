package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns an isolated Prometheus registry, the client request metrics
// fed through ObserveOperation, and the HTTP server exposing them.
type Metrics struct {
	// Server serves the registry on /metrics. Nil when Config.Address is empty.
	Server *http.Server

	// Registry is private to this instance so several clients in one
	// process do not collide.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseBytes   *prometheus.CounterVec
}

// NewMetrics builds the registry and registers the request metrics:
//
//   - requests_total{component,operation,status,code}
//   - request_duration_seconds{component,operation}
//   - response_bytes_total{component,operation}
//
// Every series carries service="<cfg.ServiceName>".
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    Namespace:   "needle",
//	    ServiceName: "indexer",
//	})
//	client := needleClient.WithObserver(m)
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
		namespace:  cfg.Namespace,
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "requests_total", "Total number of API requests issued", []string{"component", "operation", "status", "code"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "request_duration_seconds", "Duration of API requests in seconds", []string{"component", "operation"}, prometheus.DefBuckets)
	m.responseBytes = createCounterVec(cfg.Namespace, "response_bytes_total", "Bytes read from API responses", []string{"component", "operation"})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.responseBytes,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	if cfg.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.Server = &http.Server{
			Addr:    cfg.Address,
			Handler: mux,
		}
	}

	return m
}
