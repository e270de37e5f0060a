package lsmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines the remote operations the dashboard performs.
// This interface is implemented by *Client and can be used for testing.
type Service interface {
	FetchStats(ctx context.Context) (Stats, error)
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// Client talks to the LSM service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is used when no api_url is configured.
	DefaultBaseURL   = "http://localhost:8080"
	defaultUserAgent = "lsmdash/0.1"

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)

// NewClient builds a Client for baseURL. A zero timeout leaves requests
// bounded only by the transport defaults.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized service address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchStats retrieves the storage engine statistics from /api/stats.
func (c *Client) FetchStats(ctx context.Context) (Stats, error) {
	if c == nil {
		return Stats{}, fmt.Errorf("client is nil")
	}
	resp, err := c.do(ctx, http.MethodGet, &url.URL{Path: "/api/stats"}, nil)
	if err != nil {
		return Stats{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	stats, err := decodeStats(resp.Body)
	if err != nil {
		return Stats{}, &RequestError{RequestID: requestID(resp), Err: fmt.Errorf("decode response: %w", err)}
	}
	return stats, nil
}

// decodeStats accepts exactly one JSON object carrying both counters.
func decodeStats(r io.Reader) (Stats, error) {
	dec := json.NewDecoder(r)
	var payload statsPayload
	if err := dec.Decode(&payload); err != nil {
		return Stats{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Stats{}, errors.New("trailing data after stats object")
	}
	var missing []string
	if payload.MemTableSize == nil {
		missing = append(missing, "memTableSize")
	}
	if payload.SSTableCount == nil {
		missing = append(missing, "sstableCount")
	}
	if len(missing) > 0 {
		return Stats{}, fmt.Errorf("missing %s", strings.Join(missing, "/"))
	}
	return Stats{MemTableSize: *payload.MemTableSize, SSTableCount: *payload.SSTableCount}, nil
}

// Set upserts key to value via /api/set. Any 2xx status counts as accepted
// and the body is ignored.
func (c *Client) Set(ctx context.Context, key, value string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(SetRequest{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, &url.URL{Path: "/api/set"}, body)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// Get looks up key via /api/get and returns the response body verbatim.
// A missing key comes back as the NotFound sentinel, not as an error.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/get", RawQuery: "key=" + url.QueryEscape(key)}
	resp, err := c.do(ctx, http.MethodGet, rel, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RequestError{RequestID: requestID(resp), Err: fmt.Errorf("read response: %w", err)}
	}
	return string(data), nil
}

// do issues the request and returns the response when the status is 2xx.
// The caller owns the body.
func (c *Client) do(ctx context.Context, method string, rel *url.URL, body []byte) (*http.Response, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	id := uuid.New().String()
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{RequestID: id, Err: fmt.Errorf("execute request: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, &RequestError{RequestID: id, Err: &StatusError{Path: rel.Path, Code: resp.StatusCode}}
	}
	return resp, nil
}

func requestID(resp *http.Response) string {
	if resp == nil || resp.Request == nil {
		return ""
	}
	return resp.Request.Header.Get(RequestIDHeader)
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
