package superhero

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the remote catalog has no entry for the requested id.
var ErrNotFound = errors.New("superhero: not found")

// Client defines the remote catalog operations.
type Client interface {
	// FetchAll returns every character of the remote catalog, in source order.
	FetchAll(ctx context.Context) ([]Character, error)
	// FetchBiography returns the biography of a single character.
	FetchBiography(ctx context.Context, id int) (*Biography, error)
}

var _ Client = (*HTTPClient)(nil)

// HTTPClient talks to the superhero API over HTTP.
type HTTPClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates an HTTP client for the configured catalog.
func NewClient(cfg Config) (*HTTPClient, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("superhero: base url is required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &HTTPClient{
		baseURL:   base,
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
	}, nil
}

// FetchAll retrieves the full catalog from all.json.
func (c *HTTPClient) FetchAll(ctx context.Context) ([]Character, error) {
	body, err := c.get(ctx, c.baseURL+"/all.json")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	var characters []Character
	if err := json.Unmarshal(body, &characters); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}
	return characters, nil
}

// FetchBiography retrieves biography/{id}.json.
func (c *HTTPClient) FetchBiography(ctx context.Context, id int) (*Biography, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/biography/%d.json", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch biography %d: %w", id, err)
	}

	var bio Biography
	if err := json.Unmarshal(body, &bio); err != nil {
		return nil, fmt.Errorf("failed to parse biography %d: %w", id, err)
	}
	return &bio, nil
}

// get performs a single GET. Failures are not retried; the next refresh re-attempts.
func (c *HTTPClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
