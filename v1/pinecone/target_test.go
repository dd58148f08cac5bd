package pinecone

import (
	"errors"
	"testing"
)

func testResolvedConfig() resolvedConfig {
	return resolvedConfig{
		apiKey:      "test-key",
		environment: "us-east1-gcp",
		apiHost:     DefaultAPIHost,
	}
}

func TestRouteControlPlaneIndexes(t *testing.T) {
	url, err := route(controlPlaneIndexes{}, testResolvedConfig(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://api.pinecone.io/indexes" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestRouteControlPlaneIndexesWithName(t *testing.T) {
	url, err := route(controlPlaneIndexes{}, testResolvedConfig(), "my-index")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://api.pinecone.io/indexes/my-index" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestRouteControlPlaneCollections(t *testing.T) {
	url, err := route(controlPlaneCollections{}, testResolvedConfig(), "snapshot")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://api.pinecone.io/collections/snapshot" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestRouteControlPlaneHostOverride(t *testing.T) {
	rc := testResolvedConfig()
	rc.apiHost = "http://127.0.0.1:9999/"

	url, err := route(controlPlaneIndexes{}, rc, "my-index")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://127.0.0.1:9999/indexes/my-index" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestRouteLegacyController(t *testing.T) {
	url, err := route(legacyController{}, testResolvedConfig(), "actions/whoami")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://controller.us-east1-gcp.pinecone.io/actions/whoami" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestRouteLegacyControllerMissingEnvironment(t *testing.T) {
	rc := testResolvedConfig()
	rc.environment = ""

	_, err := route(legacyController{}, rc, "actions/whoami")
	if !errors.Is(err, ErrMissingEnvironment) {
		t.Errorf("expected ErrMissingEnvironment, got %v", err)
	}
}

func TestRouteDataPlaneVectors(t *testing.T) {
	url, err := route(dataPlaneVectors{host: "my-index-abc123.svc.pinecone.io"}, testResolvedConfig(), "upsert")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://my-index-abc123.svc.pinecone.io/vectors/upsert" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestRouteDataPlaneRootSkipsVectorsSegment(t *testing.T) {
	url, err := route(dataPlaneRoot{host: "my-index-abc123.svc.pinecone.io"}, testResolvedConfig(), "query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://my-index-abc123.svc.pinecone.io/query" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestRouteDataPlaneKeepsExistingScheme(t *testing.T) {
	url, err := route(dataPlaneVectors{host: "http://127.0.0.1:8080"}, testResolvedConfig(), "fetch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://127.0.0.1:8080/vectors/fetch" {
		t.Errorf("unexpected url: %s", url)
	}
}

func TestEnsureSchemeTrimsTrailingSlash(t *testing.T) {
	if got := ensureScheme("example.com/"); got != "https://example.com" {
		t.Errorf("unexpected host: %s", got)
	}
}
