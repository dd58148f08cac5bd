// Package metrics exposes Prometheus metrics for the Pinecone client.
//
// It maintains an isolated Prometheus registry, serves it on a /metrics HTTP
// endpoint, and ships an [Observer] that turns the client's operation events
// into counters and histograms:
//
//	pinecone_operations_total{operation,status}
//	pinecone_operation_duration_seconds{operation}
//	pinecone_operation_errors_total{operation}
//
// Basic usage:
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	go m.Server.ListenAndServe()
//
//	client, _ := pinecone.NewClient(pinecone.Params{Config: cfg})
//	client = client.WithObserver(metrics.NewObserver(m))
//
// For Fx applications, FXModule provides both and manages the server
// lifecycle.
package metrics
