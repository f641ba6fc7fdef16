package gateway

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

	"github.com/intentops/intentctl/internal/contract"
)

// apiKeyHeader carries the opaque per-tenant credential.
const apiKeyHeader = "X-API-Key"

// Client talks to the intent analytics service over its REST contract.
// It performs no retries and no caching; failed requests surface to the
// caller, which owns any retry policy.
type Client struct {
	baseURL   string
	client    *http.Client
	creds     contract.CredentialProvider
	userAgent string
}

var _ contract.Gateway = (*Client)(nil) // Compile-time check

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithUserAgent sets the User-Agent header on outgoing requests.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new gateway client. creds may be nil, in which case all
// requests are sent unauthenticated.
func NewClient(baseURL string, creds contract.CredentialProvider, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: contract.DefaultTimeout},
		creds:     creds,
		userAgent: "intentctl",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StaticKey is a CredentialProvider for a fixed API key, used when the key
// comes from a flag or environment variable instead of the credential store.
type StaticKey string

// APIKey returns the fixed key.
func (k StaticKey) APIKey() (string, error) { return string(k), nil }

// do issues one request and decodes the JSON response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)

	if c.creds != nil {
		key, err := c.creds.APIKey()
		if err != nil {
			return fmt.Errorf("read credential: %w", err)
		}
		if key != "" {
			req.Header.Set(apiKeyHeader, key)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{URL: reqURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return &ServiceError{Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: reqURL, Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}
