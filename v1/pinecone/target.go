package pinecone

import (
	"fmt"
	"strings"
)

// target identifies where a request goes. It is a closed sum type: each
// variant knows how to produce its own base URL, and adding a new variant
// forces a compile-time decision here rather than a stringly-typed branch at
// every call site.
type target interface {
	baseURL(rc resolvedConfig) (string, error)
}

// controlPlaneIndexes addresses the fixed global API host for index
// lifecycle operations.
type controlPlaneIndexes struct{}

func (controlPlaneIndexes) baseURL(rc resolvedConfig) (string, error) {
	return strings.TrimRight(rc.apiHost, "/") + "/indexes", nil
}

// controlPlaneCollections addresses the fixed global API host for collection
// lifecycle operations.
type controlPlaneCollections struct{}

func (controlPlaneCollections) baseURL(rc resolvedConfig) (string, error) {
	return strings.TrimRight(rc.apiHost, "/") + "/collections", nil
}

// legacyController addresses the environment-scoped controller host of the
// legacy API generation. Only whoami still routes here; the host template is
// preserved exactly for compatibility with that generation.
type legacyController struct{}

func (legacyController) baseURL(rc resolvedConfig) (string, error) {
	if rc.environment == "" {
		return "", ErrMissingEnvironment
	}
	return fmt.Sprintf(legacyControllerHostFormat, rc.environment), nil
}

// dataPlaneVectors addresses the /vectors sub-path of a dynamically
// discovered per-index host.
type dataPlaneVectors struct {
	host string
}

func (t dataPlaneVectors) baseURL(resolvedConfig) (string, error) {
	return ensureScheme(t.host) + "/vectors", nil
}

// dataPlaneRoot addresses a discovered per-index host directly, without the
// /vectors segment. The current API generation moved query to the index
// root, hence this deliberate asymmetry with dataPlaneVectors.
type dataPlaneRoot struct {
	host string
}

func (t dataPlaneRoot) baseURL(resolvedConfig) (string, error) {
	return ensureScheme(t.host), nil
}

// route produces the fully qualified URL for an operation.
func route(t target, rc resolvedConfig, path string) (string, error) {
	base, err := t.baseURL(rc)
	if err != nil {
		return "", err
	}

	if path == "" {
		return base, nil
	}
	return base + "/" + strings.TrimLeft(path, "/"), nil
}

// ensureScheme prefixes https:// when the discovered host carries no scheme.
// Hosts returned by describe-index are bare DNS names; test servers hand
// back full URLs.
func ensureScheme(host string) string {
	host = strings.TrimRight(host, "/")
	if strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}
