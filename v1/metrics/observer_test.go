package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/MikaAK/pinecone/v1/observability"
)

func TestObserverRecordsSuccess(t *testing.T) {
	m := NewMetrics(DefaultConfig())
	observer := NewObserver(m)

	observer.ObserveOperation(observability.OperationContext{
		Component: "pinecone",
		Operation: "query",
		Duration:  25 * time.Millisecond,
	})

	total := testutil.ToFloat64(m.operationsTotal.WithLabelValues("query", "success"))
	if total != 1 {
		t.Errorf("expected one successful query, got %v", total)
	}

	errs := testutil.ToFloat64(m.operationErrors.WithLabelValues("query"))
	if errs != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestObserverRecordsError(t *testing.T) {
	m := NewMetrics(DefaultConfig())
	observer := NewObserver(m)

	observer.ObserveOperation(observability.OperationContext{
		Component: "pinecone",
		Operation: "upsert_vectors",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("connection refused"),
	})

	total := testutil.ToFloat64(m.operationsTotal.WithLabelValues("upsert_vectors", "error"))
	if total != 1 {
		t.Errorf("expected one failed upsert, got %v", total)
	}

	errs := testutil.ToFloat64(m.operationErrors.WithLabelValues("upsert_vectors"))
	if errs != 1 {
		t.Errorf("expected one error, got %v", errs)
	}
}

func TestObserverNilSafe(t *testing.T) {
	var observer *Observer
	observer.ObserveOperation(observability.OperationContext{Operation: "query"})

	NewObserver(nil).ObserveOperation(observability.OperationContext{Operation: "query"})
}

func TestNewMetricsDefaults(t *testing.T) {
	m := NewMetrics(Config{})

	if m.Registry == nil {
		t.Fatal("expected a registry")
	}
	if m.Server == nil {
		t.Fatal("expected a server")
	}
	if m.Server.Addr != DefaultMetricsAddress {
		t.Errorf("expected default address, got %q", m.Server.Addr)
	}
}
