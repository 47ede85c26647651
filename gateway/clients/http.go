package clients

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

// Config carries the explicit per-client configuration. Base URLs are never
// read from globals; each client gets its own Config at construction.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// httpClient wraps the shared request plumbing for the three downstream
// clients.
type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient(cfg Config) httpClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return httpClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// do issues a JSON request and returns the response. Transport errors and
// timeouts are wrapped as ErrUnavailable.
func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", method, u, ErrUnavailable, err)
	}
	return resp, nil
}

// decode reads a 2xx JSON body into out and drains/closes the response.
func decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// statusError converts a non-2xx response into a taxonomy error. The body is
// drained so the connection can be reused.
func statusError(resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	var base error
	switch resp.StatusCode {
	case http.StatusNotFound:
		base = ErrNotFound
	case http.StatusConflict:
		base = ErrConflict
	default:
		if resp.StatusCode >= 500 {
			base = ErrUnavailable
		} else {
			base = ErrRejected
		}
	}
	return fmt.Errorf("%w: status=%d body=%s", base, resp.StatusCode, bytes.TrimSpace(body))
}
