package pinecone

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func decodeBody(t *testing.T, raw string) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("unexpected error decoding request body: %v", err)
	}
	return body
}

func TestListIndexes(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusOK, `{"indexes":[{"name":"docs"}]}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	result, err := client.ListIndexes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet || req.Path != "/indexes" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}
}

func TestDescribeIndex(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusOK, `{"name":"docs","host":"docs-abc.svc.pinecone.io"}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	result, err := client.DescribeIndex(context.Background(), "docs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Map()["host"] != "docs-abc.svc.pinecone.io" {
		t.Errorf("unexpected payload: %v", result.Payload)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet || req.Path != "/indexes/docs" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}
}

func TestDescribeIndexEmptyName(t *testing.T) {
	client := newTestClient(t, DefaultConfig().WithAPIKey("key"))

	_, err := client.DescribeIndex(context.Background(), "")
	if !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateIndexServerlessDefaults(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusCreated, `{"name":"docs"}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	result, err := client.CreateIndex(context.Background(), &CreateIndexRequest{
		Name: "docs",
		Spec: &IndexSpec{Serverless: &ServerlessSpec{Cloud: CloudAWS, Region: "us-east-1"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPost || req.Path != "/indexes" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}

	body := decodeBody(t, req.Body)
	if body["name"] != "docs" {
		t.Errorf("unexpected name: %v", body["name"])
	}
	if body["dimension"] != float64(384) {
		t.Errorf("expected default dimension 384, got %v", body["dimension"])
	}
	if body["metric"] != "cosine" {
		t.Errorf("expected default metric cosine, got %v", body["metric"])
	}

	spec := body["spec"].(map[string]interface{})
	serverless := spec["serverless"].(map[string]interface{})
	if serverless["cloud"] != "aws" || serverless["region"] != "us-east-1" {
		t.Errorf("unexpected serverless spec: %v", serverless)
	}
}

func TestCreateIndexPodBody(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusCreated, `{"name":"docs"}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	_, err := client.CreateIndex(context.Background(), &CreateIndexRequest{
		Name:      "docs",
		Dimension: 1536,
		Metric:    MetricDotproduct,
		Spec: &IndexSpec{Pod: &PodSpec{
			Environment: "us-east1-gcp",
			PodType:     PodType{Class: "p1", Size: "x2"},
			Replicas:    2,
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := decodeBody(t, (*requests)[0].Body)
	if body["dimension"] != float64(1536) || body["metric"] != "dotproduct" {
		t.Errorf("unexpected body: %v", body)
	}

	pod := body["spec"].(map[string]interface{})["pod"].(map[string]interface{})
	if pod["pod_type"] != "p1.x2" {
		t.Errorf("unexpected pod_type: %v", pod["pod_type"])
	}
	if pod["environment"] != "us-east1-gcp" {
		t.Errorf("unexpected environment: %v", pod["environment"])
	}
	if pod["replicas"] != float64(2) {
		t.Errorf("unexpected replicas: %v", pod["replicas"])
	}
	// Unset pod counts are floored at the service minimum of one.
	if pod["pods"] != float64(1) || pod["shards"] != float64(1) {
		t.Errorf("unexpected pod counts: %v", pod)
	}
}

func TestCreateIndexMissingSpec(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusCreated, `{}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	_, err := client.CreateIndex(context.Background(), &CreateIndexRequest{Name: "docs"})
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(*requests) != 0 {
		t.Error("no request should be issued for an invalid create")
	}
}

func TestCreateIndexAmbiguousSpec(t *testing.T) {
	client := newTestClient(t, DefaultConfig().WithAPIKey("key"))

	_, err := client.CreateIndex(context.Background(), &CreateIndexRequest{
		Name: "docs",
		Spec: &IndexSpec{
			Serverless: &ServerlessSpec{Cloud: CloudAWS, Region: "us-east-1"},
			Pod:        &PodSpec{PodType: PodType{Class: "p1", Size: "x1"}},
		},
	})
	if !IsValidationError(err) {
		t.Errorf("expected validation error for ambiguous spec, got %v", err)
	}
}

func TestCreateIndexInvalidMetric(t *testing.T) {
	client := newTestClient(t, DefaultConfig().WithAPIKey("key"))

	_, err := client.CreateIndex(context.Background(), &CreateIndexRequest{
		Name:   "docs",
		Metric: "manhattan",
		Spec:   &IndexSpec{Serverless: &ServerlessSpec{Cloud: CloudAWS, Region: "us-east-1"}},
	})
	if !IsValidationError(err) {
		t.Errorf("expected validation error for unknown metric, got %v", err)
	}
}

func TestCreateIndexNilRequest(t *testing.T) {
	client := newTestClient(t, DefaultConfig().WithAPIKey("key"))

	_, err := client.CreateIndex(context.Background(), nil)
	if !errors.Is(err, ErrNilRequest) {
		t.Errorf("expected ErrNilRequest, got %v", err)
	}
}

func TestDeleteIndex(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusAccepted, "")
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	result, err := client.DeleteIndex(context.Background(), "docs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}

	req := (*requests)[0]
	if req.Method != http.MethodDelete || req.Path != "/indexes/docs" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}
}

func TestConfigureIndex(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	_, err := client.ConfigureIndex(context.Background(), "docs", &ConfigureIndexRequest{
		Replicas: 4,
		PodType:  &PodType{Class: "p2", Size: "x4"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPatch || req.Path != "/indexes/docs" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}

	body := decodeBody(t, req.Body)
	pod := body["spec"].(map[string]interface{})["pod"].(map[string]interface{})
	if pod["replicas"] != float64(4) {
		t.Errorf("unexpected replicas: %v", pod["replicas"])
	}
	if pod["pod_type"] != "p2.x4" {
		t.Errorf("unexpected pod_type: %v", pod["pod_type"])
	}
}

func TestConfigureIndexReplicasOnly(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusOK, `{}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	_, err := client.ConfigureIndex(context.Background(), "docs", &ConfigureIndexRequest{Replicas: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pod := decodeBody(t, (*requests)[0].Body)["spec"].(map[string]interface{})["pod"].(map[string]interface{})
	if _, present := pod["pod_type"]; present {
		t.Errorf("pod_type should be omitted when unset: %v", pod)
	}
}

func TestConfigureIndexNothingToChange(t *testing.T) {
	client := newTestClient(t, DefaultConfig().WithAPIKey("key"))

	_, err := client.ConfigureIndex(context.Background(), "docs", &ConfigureIndexRequest{})
	if !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
