package provision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/substrate-dev/sandbox-agent/internal/errors"
	"github.com/substrate-dev/sandbox-agent/internal/logging"
)

// HTTPClient talks to a sandbox provisioning API over REST:
//
//	POST   {base}/sandboxes            create
//	GET    {base}/sandboxes            list
//	GET    {base}/sandboxes/{id}       get
//	DELETE {base}/sandboxes/{id}       delete
//	PATCH  {base}/sandboxes/{id}       configure
//	POST   {base}/sandboxes/{id}/start start
//	POST   {base}/sandboxes/{id}/stop  stop
//
// Requests carry a Bearer token when an API key is configured.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient creates a provisioning client for the given API base URL.
// A zero timeout falls back to 60 seconds.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) endpoint(parts ...string) string {
	path := c.baseURL + "/sandboxes"
	for _, p := range parts {
		path += "/" + url.PathEscape(p)
	}
	return path
}

// do issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.APIError("failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.APIError("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logging.Debug("provisioning request", "method", method, "endpoint", endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.APIError(fmt.Sprintf("%s %s failed", method, endpoint), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.SandboxNotFound(idFromEndpoint(endpoint))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.APIError(
			fmt.Sprintf("%s %s returned %s: %s", method, endpoint, resp.Status, strings.TrimSpace(string(snippet))),
			nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.APIError("failed to decode response", err)
	}
	return nil
}

// idFromEndpoint recovers the sandbox id for 404 messages. Lifecycle
// endpoints end in /start or /stop; the id is the segment before.
func idFromEndpoint(endpoint string) string {
	segments := strings.Split(strings.TrimRight(endpoint, "/"), "/")
	last := segments[len(segments)-1]
	if (last == "start" || last == "stop") && len(segments) > 1 {
		last = segments[len(segments)-2]
	}
	unescaped, err := url.PathUnescape(last)
	if err != nil {
		return last
	}
	return unescaped
}

// Create provisions a new sandbox.
func (c *HTTPClient) Create(ctx context.Context, req CreateRequest) (*Sandbox, error) {
	if req.Resources == nil {
		req.Resources = map[string]string{}
	}
	var sb Sandbox
	if err := c.do(ctx, http.MethodPost, c.endpoint(), req, &sb); err != nil {
		return nil, err
	}
	return &sb, nil
}

// Get returns the current state of a sandbox.
func (c *HTTPClient) Get(ctx context.Context, id string) (*Sandbox, error) {
	var sb Sandbox
	if err := c.do(ctx, http.MethodGet, c.endpoint(id), nil, &sb); err != nil {
		return nil, err
	}
	return &sb, nil
}

// List returns all sandboxes known to the provider.
func (c *HTTPClient) List(ctx context.Context) ([]*Sandbox, error) {
	var out []*Sandbox
	if err := c.do(ctx, http.MethodGet, c.endpoint(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a sandbox.
func (c *HTTPClient) Delete(ctx context.Context, id string) (*Ack, error) {
	var ack Ack
	if err := c.do(ctx, http.MethodDelete, c.endpoint(id), nil, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// Configure applies configuration to an existing sandbox.
func (c *HTTPClient) Configure(ctx context.Context, id string, configuration map[string]any) (*Sandbox, error) {
	var sb Sandbox
	if err := c.do(ctx, http.MethodPatch, c.endpoint(id), configuration, &sb); err != nil {
		return nil, err
	}
	return &sb, nil
}

// Start starts a stopped sandbox.
func (c *HTTPClient) Start(ctx context.Context, id string) (*Ack, error) {
	var ack Ack
	if err := c.do(ctx, http.MethodPost, c.endpoint(id, "start"), nil, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// Stop stops a running sandbox.
func (c *HTTPClient) Stop(ctx context.Context, id string) (*Ack, error) {
	var ack Ack
	if err := c.do(ctx, http.MethodPost, c.endpoint(id, "stop"), nil, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

var _ Client = (*HTTPClient)(nil)
