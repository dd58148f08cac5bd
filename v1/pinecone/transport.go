package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// requestSpec describes one outbound request before it is built: the routing
// target, the sub-path, an optional JSON body and optional query parameters.
// Query parameters support repeated keys (batch id lookups).
type requestSpec struct {
	method string
	target target
	path   string
	body   interface{}
	query  url.Values
}

// do builds, issues and classifies a single request.
//
// The returned error is reserved for request-construction problems (bad
// routing input, unencodable body); everything that happens once the request
// leaves the process is reported through the Result.
func (c *Client) do(ctx context.Context, operation string, spec requestSpec, rc resolvedConfig) (*Result, error) {
	if rc.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint, err := route(spec.target, rc, spec.path)
	if err != nil {
		return nil, err
	}
	if len(spec.query) > 0 {
		endpoint = endpoint + "?" + spec.query.Encode()
	}

	var bodyReader io.Reader
	if spec.body != nil {
		data, err := json.Marshal(spec.body)
		if err != nil {
			return nil, fmt.Errorf("pinecone: encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("pinecone: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", rc.apiKey)

	var span traceSpan
	if c.tracer != nil {
		ctx, span = c.tracer.StartSpan(ctx, "pinecone."+operation)
		defer span.End()
		c.tracer.SetAttributes(span, map[string]interface{}{
			"http.method": spec.method,
			"http.url":    endpoint,
		})
		req = req.WithContext(ctx)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if span != nil {
			c.tracer.RecordErrorOnSpan(span, err)
		}
		c.observeOperation(operation, spec.path, spec.method, time.Since(start), err, 0, nil)
		return transportFailure(err), nil
	}
	defer resp.Body.Close()

	result := classifyResponse(resp)

	var opErr error
	if result.Failed() {
		opErr = result.AsError()
		if span != nil {
			c.tracer.RecordErrorOnSpan(span, opErr)
		}
		c.logWarn("pinecone request failed", opErr, map[string]interface{}{
			"operation": operation,
			"method":    spec.method,
			"url":       endpoint,
			"status":    resp.StatusCode,
			"body":      result.Payload,
		})
	}
	c.observeOperation(operation, spec.path, spec.method, time.Since(start), opErr, resp.ContentLength, map[string]interface{}{
		"status": resp.StatusCode,
	})

	return result, nil
}

// classifyResponse normalizes an HTTP response into the two-variant Result.
// Any status in [200, 299] is a Success; everything else is a Failure
// carrying the parsed error body. Non-JSON bodies are preserved verbatim
// under "message". A body that cannot be read to completion is a transport
// failure: the status line alone does not prove the response arrived intact.
func classifyResponse(resp *http.Response) *Result {
	payload, err := parseBody(resp.Body)
	if err != nil {
		return transportFailure(fmt.Errorf("pinecone: read response body: %w", err))
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return successResult(resp.StatusCode, payload)
	}
	return failureResult(resp.StatusCode, payload)
}

func parseBody(body io.Reader) (interface{}, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var payload interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return map[string]interface{}{"message": string(data)}, nil
	}
	return payload, nil
}
