package observability

import "time"

// OperationContext carries everything an Observer needs to know about one
// completed client operation.
type OperationContext struct {
	// Component is the emitting package, e.g. "pinecone".
	Component string

	// Operation is the logical operation name, e.g. "upsert_vectors".
	Operation string

	// Resource is the primary object of the operation (request path,
	// index name, key).
	Resource string

	// SubResource adds secondary context (HTTP method, field name).
	SubResource string

	// Duration is the wall-clock time of the operation.
	Duration time.Duration

	// Error is non-nil when the operation failed.
	Error error

	// Size is the payload size in bytes, when known (-1 or 0 otherwise).
	Size int64

	// Metadata carries operation-specific extras (status codes, counts).
	Metadata map[string]interface{}
}

// Observer receives operation events from instrumented clients. Implementors
// must be safe for concurrent use; clients may report from multiple
// goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// NopObserver discards all events. Useful as a default and in tests.
type NopObserver struct{}

func (NopObserver) ObserveOperation(OperationContext) {}
