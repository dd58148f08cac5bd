package pinecone

import (
	"encoding/json"
	"fmt"
)

// Result is the uniform two-variant outcome of every remote operation.
//
// Exactly one Result is produced per façade call. A Success Result carries
// the parsed JSON response payload; a Failure Result carries the parsed JSON
// error body, or a transport-level error description when no HTTP response
// was obtained at all. Remote rejections are data for the caller to branch
// on, never Go errors.
type Result struct {
	// Success is true for HTTP statuses in [200, 299].
	Success bool

	// StatusCode is the HTTP status of the response, or 0 when the request
	// failed at the transport level (DNS, connection refused, timeout) and
	// no response was obtained.
	StatusCode int

	// Payload is the parsed JSON body: a map[string]interface{} for objects,
	// a []interface{} for arrays, nil for empty bodies. For non-JSON error
	// bodies it is a map with the raw text under "message".
	Payload interface{}

	// Err carries the underlying transport error when StatusCode is 0.
	// It distinguishes network faults from application-level rejections.
	Err error
}

// Failed reports whether the operation was rejected remotely or failed in
// transit.
func (r *Result) Failed() bool {
	return !r.Success
}

// TransportFailure reports whether no HTTP response was obtained at all.
func (r *Result) TransportFailure() bool {
	return r.StatusCode == 0
}

// Map returns the payload as an object, or nil when the payload is absent or
// not a JSON object.
func (r *Result) Map() map[string]interface{} {
	m, ok := r.Payload.(map[string]interface{})
	if !ok {
		return nil
	}
	return m
}

// Decode re-marshals a Success payload into a typed structure.
func (r *Result) Decode(out interface{}) error {
	if r.Failed() {
		return fmt.Errorf("pinecone: cannot decode failed result: %w", r.AsError())
	}

	data, err := json.Marshal(r.Payload)
	if err != nil {
		return fmt.Errorf("pinecone: encode payload: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("pinecone: decode payload: %w", err)
	}
	return nil
}

// AsError converts a failure Result into an error value for callers that
// prefer error plumbing over branching on the Result. It returns nil for a
// Success Result, the transport error for transport failures, and an
// *APIError for HTTP-level rejections.
func (r *Result) AsError() error {
	if r.Success {
		return nil
	}
	if r.Err != nil {
		return r.Err
	}

	msg := ""
	if m := r.Map(); m != nil {
		if s, ok := m["message"].(string); ok {
			msg = s
		}
	}
	return &APIError{StatusCode: r.StatusCode, Message: msg}
}

// successResult wraps a parsed 2xx payload.
func successResult(status int, payload interface{}) *Result {
	return &Result{Success: true, StatusCode: status, Payload: payload}
}

// failureResult wraps a parsed non-2xx payload.
func failureResult(status int, payload interface{}) *Result {
	return &Result{Success: false, StatusCode: status, Payload: payload}
}

// transportFailure wraps an error from the HTTP round trip itself.
func transportFailure(err error) *Result {
	return &Result{
		Success: false,
		Payload: map[string]interface{}{"message": err.Error()},
		Err:     err,
	}
}
