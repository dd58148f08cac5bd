package metrics

import (
	"github.com/MikaAK/pinecone/v1/observability"
)

// Observer records client operation events into the Prometheus metrics of a
// Metrics instance. It implements observability.Observer and is safe for
// concurrent use.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	client = client.WithObserver(metrics.NewObserver(m))
type Observer struct {
	metrics *Metrics
}

// NewObserver creates an Observer backed by the given Metrics instance.
func NewObserver(m *Metrics) *Observer {
	return &Observer{metrics: m}
}

// ObserveOperation records one completed operation: a total counter labeled
// by outcome, a duration histogram, and an error counter on failure.
func (o *Observer) ObserveOperation(ctx observability.OperationContext) {
	if o == nil || o.metrics == nil {
		return
	}

	status := "success"
	if ctx.Error != nil {
		status = "error"
		o.metrics.operationErrors.WithLabelValues(ctx.Operation).Inc()
	}

	o.metrics.operationsTotal.WithLabelValues(ctx.Operation, status).Inc()
	o.metrics.operationDuration.WithLabelValues(ctx.Operation).Observe(ctx.Duration.Seconds())
}
