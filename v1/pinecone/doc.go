// Package pinecone provides a thin, dependency-injected REST client for the
// Pinecone vector database.
//
// The package maps each logical Pinecone operation onto a single outbound
// HTTPS/JSON request. It does not implement retries, caching, or connection
// pooling itself; those concerns belong to the injected *http.Client. What it
// does own is the request-construction and endpoint-routing layer: deciding,
// per operation, which host family to address (the global control-plane API,
// the legacy environment-scoped controller, or a per-index data-plane host
// discovered dynamically), how to shape the request body, and how to
// normalize every response into a uniform two-variant Result.
//
// # Core Features
//
//   - Control-plane index lifecycle: list, describe, create, delete, configure
//   - Data-plane vector operations: upsert, fetch, delete, delete-all,
//     describe-stats, query (with automatic per-index host discovery)
//   - Collection lifecycle: list, describe, create, delete
//   - Legacy whoami against the environment-scoped controller host
//   - Fail-fast parameter validation before any network activity
//   - Uniform Success/Failure Result for all remote outcomes
//   - Optional observability hooks ([observability.Observer]) and tracing
//   - Fx module for dependency injection
//
// # Error Model
//
// Two disjoint failure classes never mix:
//
//  1. Programmer/input errors (invalid enum values, non-positive integers,
//     missing required spec fields) are returned as Go errors, typically a
//     *ValidationError, before any request is built. Fix the call site; do
//     not retry.
//  2. Remote/service errors (non-2xx responses, DNS failures, refused
//     connections) are never returned as errors. They surface as a Result
//     with Success == false carrying the parsed error body, or the transport
//     error description when no response was obtained.
//
// # Basic Usage
//
//	cfg := pinecone.NewConfigFromEnv() // PINECONE_API_KEY, PINECONE_ENVIRONMENT
//
//	client, err := pinecone.NewClient(pinecone.Params{Config: cfg})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.ListIndexes(ctx)
//	if err != nil {
//	    log.Fatal(err) // programmer error
//	}
//	if !res.Success {
//	    fmt.Println("remote rejected:", res.Payload)
//	    return
//	}
//	fmt.Println(res.Payload)
//
// Vector operations go through an index reference. Constructing the reference
// is purely local; the remote index is not contacted until the first
// operation, which discovers the index host via a describe-index call:
//
//	idx := client.Index("my-index")
//
//	res, err := idx.Query(ctx, &pinecone.QueryRequest{
//	    Vector: queryVector,
//	    TopK:   10,
//	})
//
// Host discovery is intentionally not cached: every data-plane operation
// re-resolves the index host with a fresh describe-index round trip.
//
// # Per-Call Overrides
//
// The process-wide configuration can be overridden per call:
//
//	res, err := client.ListIndexes(ctx, pinecone.WithCallAPIKey(otherKey))
//
// # FX Module Integration
//
//	app := fx.New(
//	    pinecone.FXModule,
//	    // other modules...
//	)
//
// # Package Layout
//
//	pinecone/
//	├── client.go        // Client construction and lifecycle
//	├── configs.go       // Config, env loading, per-call options
//	├── target.go        // Endpoint routing (closed target sum type)
//	├── transport.go     // Request building and Result classification
//	├── validate.go      // Fail-fast parameter validation
//	├── types.go         // Request/response shapes
//	├── indexes.go       // Control-plane index operations
//	├── vectors.go       // Data-plane vector operations
//	├── collections.go   // Collection operations
//	├── errors.go        // Sentinel and typed errors
//	├── observer.go      // Observability hook
//	└── fx_module.go     // Fx dependency injection module
package pinecone
