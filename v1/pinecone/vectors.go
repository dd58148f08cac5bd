package pinecone

import (
	"context"
	"fmt"
	"net/http"
)

// IndexRef is a local, immutable reference to a named index. Constructing
// one performs no network activity and does not verify the index exists;
// each data-plane operation discovers the index's assigned host with a fresh
// control-plane describe-index call first.
type IndexRef struct {
	client    *Client
	name      string
	namespace string
}

// Name returns the referenced index name.
func (r *IndexRef) Name() string {
	return r.name
}

// discoverHost resolves the data-plane host assigned to this index.
//
// Discovery is deliberately uncached: every call re-issues the describe
// request, trading an extra round trip for staleness avoidance. When
// discovery fails, the failure Result is returned so the caller's operation
// propagates it as its own outcome; no fallback host is ever attempted.
func (r *IndexRef) discoverHost(ctx context.Context, opts ...CallOption) (string, *Result, error) {
	res, err := r.client.DescribeIndex(ctx, r.name, opts...)
	if err != nil {
		return "", nil, err
	}
	if res.Failed() {
		return "", res, nil
	}

	host, _ := res.Map()["host"].(string)
	if host == "" {
		return "", transportFailure(fmt.Errorf("pinecone: describe index %q returned no host", r.name)), nil
	}

	return host, nil, nil
}

// DescribeStats returns vector counts and fullness for the index.
func (r *IndexRef) DescribeStats(ctx context.Context, opts ...CallOption) (*Result, error) {
	host, failed, err := r.discoverHost(ctx, opts...)
	if err != nil || failed != nil {
		return failed, err
	}

	return r.client.do(ctx, "describe_index_stats", requestSpec{
		method: http.MethodGet,
		target: dataPlaneVectors{host: host},
		path:   "describe_index_stats",
	}, r.client.resolve(opts...))
}

// Upsert inserts or overwrites vectors.
func (r *IndexRef) Upsert(ctx context.Context, req *UpsertRequest, opts ...CallOption) (*Result, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if len(req.Vectors) == 0 {
		return nil, &ValidationError{Field: "vectors", Constraint: "must contain at least one vector", Value: req.Vectors}
	}
	for _, v := range req.Vectors {
		if err := requireString("vector id", v.ID); err != nil {
			return nil, err
		}
		if len(v.Values) == 0 {
			return nil, &ValidationError{Field: "values", Constraint: "must contain at least one value", Value: v.ID}
		}
	}

	host, failed, err := r.discoverHost(ctx, opts...)
	if err != nil || failed != nil {
		return failed, err
	}

	body := map[string]interface{}{"vectors": req.Vectors}
	if ns := r.resolveNamespace(req.Namespace); ns != "" {
		body["namespace"] = ns
	}

	return r.client.do(ctx, "upsert_vectors", requestSpec{
		method: http.MethodPost,
		target: dataPlaneVectors{host: host},
		path:   "upsert",
		body:   body,
	}, r.client.resolve(opts...))
}

// Fetch retrieves vectors by id. The ids are sent as repeated query
// parameters in the given order.
func (r *IndexRef) Fetch(ctx context.Context, ids []string, opts ...CallOption) (*Result, error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}

	host, failed, err := r.discoverHost(ctx, opts...)
	if err != nil || failed != nil {
		return failed, err
	}

	return r.client.do(ctx, "fetch_vectors", requestSpec{
		method: http.MethodGet,
		target: dataPlaneVectors{host: host},
		path:   "fetch",
		query:  idsQuery(ids, r.namespace),
	}, r.client.resolve(opts...))
}

// Delete removes vectors by id, via repeated query parameters.
func (r *IndexRef) Delete(ctx context.Context, ids []string, opts ...CallOption) (*Result, error) {
	if err := requireIDs(ids); err != nil {
		return nil, err
	}

	host, failed, err := r.discoverHost(ctx, opts...)
	if err != nil || failed != nil {
		return failed, err
	}

	return r.client.do(ctx, "delete_vectors", requestSpec{
		method: http.MethodDelete,
		target: dataPlaneVectors{host: host},
		path:   "delete",
		query:  idsQuery(ids, r.namespace),
	}, r.client.resolve(opts...))
}

// DeleteAll removes every vector in the namespace, or only those matching
// the filter when one is given. The two deletion modes are mutually
// exclusive on the wire: a filtered delete omits deleteAll entirely.
func (r *IndexRef) DeleteAll(ctx context.Context, filter map[string]interface{}, opts ...CallOption) (*Result, error) {
	host, failed, err := r.discoverHost(ctx, opts...)
	if err != nil || failed != nil {
		return failed, err
	}

	body := map[string]interface{}{}
	if len(filter) > 0 {
		body["filter"] = filter
	} else {
		body["deleteAll"] = true
	}
	if r.namespace != "" {
		body["namespace"] = r.namespace
	}

	return r.client.do(ctx, "delete_all_vectors", requestSpec{
		method: http.MethodPost,
		target: dataPlaneVectors{host: host},
		path:   "delete",
		body:   body,
	}, r.client.resolve(opts...))
}

// Query runs a similarity search. In the current API generation query lives
// at the index root, not under /vectors.
func (r *IndexRef) Query(ctx context.Context, req *QueryRequest, opts ...CallOption) (*Result, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if len(req.Vector) == 0 {
		return nil, &ValidationError{Field: "vector", Constraint: "must contain at least one value", Value: req.Vector}
	}

	topK := req.TopK
	if topK == 0 {
		topK = 5
	}
	if err := requirePositive("top_k", topK); err != nil {
		return nil, err
	}

	host, failed, err := r.discoverHost(ctx, opts...)
	if err != nil || failed != nil {
		return failed, err
	}

	filter := req.Filter
	if filter == nil {
		filter = map[string]interface{}{}
	}

	// Data-plane field names are camelCase on the wire.
	body := map[string]interface{}{
		"vector":          req.Vector,
		"topK":            topK,
		"includeValues":   req.IncludeValues,
		"includeMetadata": req.IncludeMetadata,
		"filter":          filter,
	}
	if ns := r.resolveNamespace(req.Namespace); ns != "" {
		body["namespace"] = ns
	}

	return r.client.do(ctx, "query", requestSpec{
		method: http.MethodPost,
		target: dataPlaneRoot{host: host},
		path:   "query",
		body:   body,
	}, r.client.resolve(opts...))
}

// resolveNamespace prefers the per-call namespace over the reference default.
func (r *IndexRef) resolveNamespace(override string) string {
	if override != "" {
		return override
	}
	return r.namespace
}
