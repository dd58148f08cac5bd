package pinecone

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/MikaAK/pinecone/v1/observability"
)

// Logger defines the interface for logging operations in the pinecone
// package. This interface allows the package to use any logging
// implementation that conforms to these methods.
//
//go:generate mockgen -source=client.go -destination=mock_logger.go -package=pinecone
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// traceSpan aliases the OpenTelemetry span type used by the Tracer hook.
type traceSpan = trace.Span

// Tracer is the optional tracing hook. The v1/tracer package satisfies it.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	RecordErrorOnSpan(span trace.Span, err error)
	SetAttributes(span trace.Span, attrs map[string]interface{})
}

// Client is the public entrypoint for all Pinecone operations.
//
// It holds the immutable process-wide configuration and the injected HTTP
// transport. The client keeps no other state: configuration resolution,
// endpoint routing and host discovery happen fresh on every call, so a
// single Client is safe for concurrent use by multiple goroutines.
type Client struct {
	cfg        *Config
	httpClient *http.Client

	// logger is used for structured logging; warning-level records are
	// emitted for HTTP-level failures.
	logger Logger

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// tracer optionally wraps each outbound request in a span
	tracer Tracer
}

// Params groups the constructor dependencies of Client. It doubles as the
// Fx parameter struct for FXModule.
type Params struct {
	fx.In

	// Config is required. Use NewConfigFromEnv or DefaultConfig plus the
	// With* helpers.
	Config *Config

	// HTTPClient is optional; a client with Config.Timeout is built when nil.
	// Timeout, pooling and TLS policy all live here.
	HTTPClient *http.Client `optional:"true"`

	// Logger is optional.
	Logger Logger `optional:"true"`
}

// NewClient constructs a Client and validates its configuration.
//
// Construction is purely local: no connectivity check is performed, and
// referenced indexes are not verified to exist.
func NewClient(p Params) (*Client, error) {
	if p.Config == nil {
		return nil, fmt.Errorf("pinecone: invalid config: %w", ErrNilRequest)
	}
	if err := p.Config.Validate(); err != nil {
		return nil, fmt.Errorf("pinecone: invalid config: %w", err)
	}

	httpClient := p.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: p.Config.Timeout}
	}

	return &Client{
		cfg:        p.Config,
		httpClient: httpClient,
		logger:     p.Logger,
	}, nil
}

// WithObserver sets the observer for this client and returns the client for
// method chaining. The observer receives events about every remote operation.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for
// method chaining.
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}

// WithTracer sets the tracing hook for this client and returns the client
// for method chaining.
func (c *Client) WithTracer(tracer Tracer) *Client {
	c.tracer = tracer
	return c
}

// Index returns a local reference to a named index. The remote index is not
// contacted: its host is discovered lazily on the first data-plane call.
func (c *Client) Index(name string) *IndexRef {
	return &IndexRef{client: c, name: name}
}

// IndexWithNamespace returns an index reference whose vector operations
// default to the given namespace when none is supplied per call.
func (c *Client) IndexWithNamespace(name, namespace string) *IndexRef {
	return &IndexRef{client: c, name: name, namespace: namespace}
}

// Whoami reports the project attached to the configured API key. It is the
// one remaining operation of the legacy API generation and addresses the
// environment-scoped controller host; ErrMissingEnvironment is returned when
// no environment is configured.
func (c *Client) Whoami(ctx context.Context, opts ...CallOption) (*Result, error) {
	rc := c.resolve(opts...)

	return c.do(ctx, "whoami", requestSpec{
		method: http.MethodGet,
		target: legacyController{},
		path:   "actions/whoami",
	}, rc)
}

// Close releases client resources. The underlying HTTP transport owns all
// connections, so this is currently a no-op kept for lifecycle symmetry.
func (c *Client) Close() error {
	return nil
}

// logWarn emits a warning if a logger is configured.
func (c *Client) logWarn(msg string, err error, fields map[string]interface{}) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Warn(msg, err, fields)
}

// idsQuery builds repeated ids query parameters, preserving caller order,
// with an optional namespace.
func idsQuery(ids []string, namespace string) url.Values {
	query := url.Values{}
	for _, id := range ids {
		query.Add("ids", id)
	}
	if namespace != "" {
		query.Set("namespace", namespace)
	}
	return query
}
