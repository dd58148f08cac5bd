package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing client metrics, plus the built-in operation metrics recorded
// by the Observer in this package.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// Core built-in metrics
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	operationErrors   *prometheus.CounterVec
}

// NewMetrics initializes and returns a new Metrics instance.
//
// The setup includes:
//   - A dedicated Prometheus registry
//   - Operation counters, error counters and duration histograms labeled by
//     operation name
//   - Optional Go/process/build-info collectors
//   - A constant "service" label on everything for aggregation
//   - An HTTP server exposing /metrics for scraping
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "pinecone-client"
	}

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": serviceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.operationsTotal = createCounterVec("pinecone_operations_total", "Total number of Pinecone API operations", []string{"operation", "status"})
	m.operationDuration = createHistogramVec("pinecone_operation_duration_seconds", "Duration of Pinecone API operations in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.operationErrors = createCounterVec("pinecone_operation_errors_total", "Total number of failed Pinecone API operations", []string{"operation"})

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.operationErrors,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	m.Server = &http.Server{
		Addr:    address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return m
}
