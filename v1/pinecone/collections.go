package pinecone

import (
	"context"
	"net/http"
)

// Collection lifecycle. Collections are static snapshots of pod-based
// indexes; all four operations are plain control-plane CRUD against the
// fixed global host.

// ListCollections lists every collection in the project.
func (c *Client) ListCollections(ctx context.Context, opts ...CallOption) (*Result, error) {
	return c.do(ctx, "list_collections", requestSpec{
		method: http.MethodGet,
		target: controlPlaneCollections{},
	}, c.resolve(opts...))
}

// DescribeCollection returns the status and size of a named collection.
func (c *Client) DescribeCollection(ctx context.Context, name string, opts ...CallOption) (*Result, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}

	return c.do(ctx, "describe_collection", requestSpec{
		method: http.MethodGet,
		target: controlPlaneCollections{},
		path:   name,
	}, c.resolve(opts...))
}

// CreateCollection snapshots a source index into a new collection.
func (c *Client) CreateCollection(ctx context.Context, req *CreateCollectionRequest, opts ...CallOption) (*Result, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := requireString("name", req.Name); err != nil {
		return nil, err
	}
	if err := requireString("source", req.Source); err != nil {
		return nil, err
	}

	return c.do(ctx, "create_collection", requestSpec{
		method: http.MethodPost,
		target: controlPlaneCollections{},
		body:   req,
	}, c.resolve(opts...))
}

// DeleteCollection deletes a named collection.
func (c *Client) DeleteCollection(ctx context.Context, name string, opts ...CallOption) (*Result, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}

	return c.do(ctx, "delete_collection", requestSpec{
		method: http.MethodDelete,
		target: controlPlaneCollections{},
		path:   name,
	}, c.resolve(opts...))
}
