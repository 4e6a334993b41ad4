package metrics

// DefaultMetricsAddress is used by NewConfig when METRICS_ADDRESS is unset.
const DefaultMetricsAddress = ":9090"

// Config defines how the Prometheus registry is set up and exposed.
type Config struct {
	// Address the /metrics HTTP server listens on, e.g. ":9090".
	// An empty Address disables the server; the registry is still usable,
	// for instance when the application already serves promhttp itself.
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace prefixes every metric name, e.g. "needle" gives
	// "needle_requests_total".
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is attached as a constant "service" label.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
