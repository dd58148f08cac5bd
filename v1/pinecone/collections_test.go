package pinecone

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestListCollections(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusOK, `{"collections":[{"name":"backup"}]}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	result, err := client.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet || req.Path != "/collections" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}
}

func TestDescribeCollection(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusOK, `{"name":"backup","status":"Ready","size":2048,"vector_count":120}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	result, err := client.DescribeCollection(context.Background(), "backup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := (*requests)[0]
	if req.Method != http.MethodGet || req.Path != "/collections/backup" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}

	var desc CollectionDescription
	if err := result.Decode(&desc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Name != "backup" || desc.Status != "Ready" || desc.VectorCount != 120 {
		t.Errorf("unexpected description: %+v", desc)
	}
}

func TestCreateCollection(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusCreated, `{"name":"backup"}`)
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	_, err := client.CreateCollection(context.Background(), &CreateCollectionRequest{
		Name:   "backup",
		Source: "docs",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := (*requests)[0]
	if req.Method != http.MethodPost || req.Path != "/collections" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}

	body := decodeBody(t, req.Body)
	if body["name"] != "backup" || body["source"] != "docs" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestCreateCollectionValidation(t *testing.T) {
	client := newTestClient(t, DefaultConfig().WithAPIKey("key"))

	if _, err := client.CreateCollection(context.Background(), nil); !errors.Is(err, ErrNilRequest) {
		t.Errorf("expected ErrNilRequest, got %v", err)
	}
	if _, err := client.CreateCollection(context.Background(), &CreateCollectionRequest{Source: "docs"}); !IsValidationError(err) {
		t.Errorf("expected validation error for missing name, got %v", err)
	}
	if _, err := client.CreateCollection(context.Background(), &CreateCollectionRequest{Name: "backup"}); !IsValidationError(err) {
		t.Errorf("expected validation error for missing source, got %v", err)
	}
}

func TestDeleteCollection(t *testing.T) {
	server, requests := newCaptureServer(t, http.StatusAccepted, "")
	client := newTestClient(t, DefaultConfig().WithAPIKey("key").WithAPIHost(server.URL))

	result, err := client.DeleteCollection(context.Background(), "backup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}

	req := (*requests)[0]
	if req.Method != http.MethodDelete || req.Path != "/collections/backup" {
		t.Errorf("unexpected request: %s %s", req.Method, req.Path)
	}
}
