package pinecone

import (
	"context"
	"net/http"
)

// Control-plane index lifecycle. Every operation validates its input first,
// then routes to the fixed global API host. Remote rejections come back as
// failure Results, never as errors.

const (
	defaultDimension = 384
	defaultMetric    = MetricCosine
)

// ListIndexes lists every index in the project.
func (c *Client) ListIndexes(ctx context.Context, opts ...CallOption) (*Result, error) {
	return c.do(ctx, "list_indexes", requestSpec{
		method: http.MethodGet,
		target: controlPlaneIndexes{},
	}, c.resolve(opts...))
}

// DescribeIndex returns the configuration and status of a named index,
// including its assigned data-plane host.
func (c *Client) DescribeIndex(ctx context.Context, name string, opts ...CallOption) (*Result, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}

	return c.do(ctx, "describe_index", requestSpec{
		method: http.MethodGet,
		target: controlPlaneIndexes{},
		path:   name,
	}, c.resolve(opts...))
}

// CreateIndex creates a new index.
//
// Dimension defaults to 384 and metric to cosine. The request must carry a
// spec with exactly one of Serverless or Pod; a missing or ambiguous spec is
// a configuration error returned immediately, without any network call.
func (c *Client) CreateIndex(ctx context.Context, req *CreateIndexRequest, opts ...CallOption) (*Result, error) {
	body, err := buildCreateIndexBody(req)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, "create_index", requestSpec{
		method: http.MethodPost,
		target: controlPlaneIndexes{},
		body:   body,
	}, c.resolve(opts...))
}

// DeleteIndex deletes a named index.
func (c *Client) DeleteIndex(ctx context.Context, name string, opts ...CallOption) (*Result, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}

	return c.do(ctx, "delete_index", requestSpec{
		method: http.MethodDelete,
		target: controlPlaneIndexes{},
		path:   name,
	}, c.resolve(opts...))
}

// ConfigureIndex scales a pod-based index. Only replicas and pod type are
// configurable; at least one must be given.
func (c *Client) ConfigureIndex(ctx context.Context, name string, req *ConfigureIndexRequest, opts ...CallOption) (*Result, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrNilRequest
	}
	if req.Replicas == 0 && req.PodType == nil {
		return nil, &ValidationError{
			Field:      "spec",
			Constraint: "must set replicas or pod_type",
			Value:      req,
		}
	}

	pod := map[string]interface{}{}
	if req.Replicas != 0 {
		if err := requirePositive("replicas", req.Replicas); err != nil {
			return nil, err
		}
		pod["replicas"] = req.Replicas
	}
	if req.PodType != nil {
		if err := req.PodType.validate(); err != nil {
			return nil, err
		}
		pod["pod_type"] = req.PodType.String()
	}

	return c.do(ctx, "configure_index", requestSpec{
		method: http.MethodPatch,
		target: controlPlaneIndexes{},
		path:   name,
		body: map[string]interface{}{
			"spec": map[string]interface{}{"pod": pod},
		},
	}, c.resolve(opts...))
}

// buildCreateIndexBody validates a create request and produces its wire
// body. Control-plane field names are snake_case.
func buildCreateIndexBody(req *CreateIndexRequest) (map[string]interface{}, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := requireString("name", req.Name); err != nil {
		return nil, err
	}

	dimension := req.Dimension
	if dimension == 0 {
		dimension = defaultDimension
	}
	if err := requirePositive("dimension", dimension); err != nil {
		return nil, err
	}

	metric := req.Metric
	if metric == "" {
		metric = defaultMetric
	}
	if err := requireMember("metric", string(metric), validMetrics); err != nil {
		return nil, err
	}

	spec, err := buildIndexSpecBody(req.Spec)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"name":      req.Name,
		"dimension": dimension,
		"metric":    string(metric),
		"spec":      spec,
	}, nil
}

func buildIndexSpecBody(spec *IndexSpec) (map[string]interface{}, error) {
	if spec == nil || (spec.Serverless == nil && spec.Pod == nil) {
		return nil, &ValidationError{
			Field:      "spec",
			Constraint: "must supply a serverless or pod deployment spec",
			Value:      spec,
		}
	}
	if spec.Serverless != nil && spec.Pod != nil {
		return nil, &ValidationError{
			Field:      "spec",
			Constraint: "serverless and pod specs are mutually exclusive",
			Value:      spec,
		}
	}

	if spec.Serverless != nil {
		s := spec.Serverless
		if err := requireMember("cloud", string(s.Cloud), validClouds); err != nil {
			return nil, err
		}
		if err := requireString("region", s.Region); err != nil {
			return nil, err
		}

		return map[string]interface{}{
			"serverless": map[string]interface{}{
				"cloud":  string(s.Cloud),
				"region": s.Region,
			},
		}, nil
	}

	p := spec.Pod
	if err := p.PodType.validate(); err != nil {
		return nil, err
	}

	pod := map[string]interface{}{
		"pod_type": p.PodType.String(),
		"pods":     atLeastOne(p.Pods),
		"replicas": atLeastOne(p.Replicas),
		"shards":   atLeastOne(p.Shards),
	}
	if p.Environment != "" {
		pod["environment"] = p.Environment
	}
	for field, value := range map[string]int{"pods": p.Pods, "replicas": p.Replicas, "shards": p.Shards} {
		if value < 0 {
			return nil, &ValidationError{Field: field, Constraint: "must be a positive integer", Value: value}
		}
	}

	return map[string]interface{}{"pod": pod}, nil
}

// atLeastOne floors pod counts at one, matching the remote service's minimum.
func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
