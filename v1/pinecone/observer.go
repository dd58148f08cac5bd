package pinecone

import (
	"time"

	"github.com/MikaAK/pinecone/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track API calls for metrics and
// tracing.
//
// Notes:
//   - resource: the request path within the routed host
//   - subResource: the HTTP method
func (c *Client) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "pinecone",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}
