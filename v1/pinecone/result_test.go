package pinecone

import (
	"errors"
	"testing"
)

func TestResultSuccess(t *testing.T) {
	r := successResult(200, map[string]interface{}{"host": "example.svc.pinecone.io"})

	if r.Failed() {
		t.Error("expected success result")
	}
	if r.TransportFailure() {
		t.Error("success result should not be a transport failure")
	}
	if r.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", r.StatusCode)
	}
	if err := r.AsError(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if r.Map()["host"] != "example.svc.pinecone.io" {
		t.Errorf("unexpected payload: %v", r.Payload)
	}
}

func TestResultFailure(t *testing.T) {
	r := failureResult(404, map[string]interface{}{"message": "index not found"})

	if !r.Failed() {
		t.Error("expected failure result")
	}
	if r.TransportFailure() {
		t.Error("404 is not a transport failure")
	}

	err := r.AsError()
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "index not found" {
		t.Errorf("unexpected message: %q", apiErr.Message)
	}
}

func TestResultTransportFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	r := transportFailure(cause)

	if !r.Failed() {
		t.Error("expected failure result")
	}
	if !r.TransportFailure() {
		t.Error("expected transport failure")
	}
	if r.StatusCode != 0 {
		t.Errorf("expected status 0, got %d", r.StatusCode)
	}
	if !errors.Is(r.AsError(), cause) {
		t.Errorf("expected underlying transport error, got %v", r.AsError())
	}
	if r.Map()["message"] != cause.Error() {
		t.Errorf("expected message payload, got %v", r.Payload)
	}
}

func TestResultMapNonObjectPayload(t *testing.T) {
	r := successResult(200, []interface{}{"a", "b"})
	if r.Map() != nil {
		t.Error("expected nil map for array payload")
	}
}

func TestResultDecode(t *testing.T) {
	r := successResult(200, map[string]interface{}{
		"name":      "docs",
		"dimension": float64(384),
		"metric":    "cosine",
		"host":      "docs-abc.svc.pinecone.io",
	})

	var desc IndexDescription
	if err := r.Decode(&desc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Name != "docs" || desc.Dimension != 384 || desc.Metric != MetricCosine {
		t.Errorf("unexpected description: %+v", desc)
	}
	if desc.Host != "docs-abc.svc.pinecone.io" {
		t.Errorf("unexpected host: %q", desc.Host)
	}
}

func TestResultDecodeFailedResult(t *testing.T) {
	r := failureResult(500, map[string]interface{}{"message": "boom"})

	var desc IndexDescription
	if err := r.Decode(&desc); err == nil {
		t.Error("expected error decoding a failed result")
	}
}
