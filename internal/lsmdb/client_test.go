package lsmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("  example.com:1234/path?x=1#frag ")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:1234" {
		t.Fatalf("url = %q, want http://example.com:1234", u.String())
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_RejectsMissingHost(t *testing.T) {
	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL returned nil error, want error")
	}
}

func TestClient_EndpointsAndHeaders(t *testing.T) {
	t.Parallel()

	var (
		gotSet      SetRequest
		gotSetType  string
		gotQueryKey string
		gotAgent    string
		gotIDs      []string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotIDs = append(gotIDs, r.Header.Get(RequestIDHeader))

		switch r.URL.Path {
		case "/api/stats":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"memTableSize":120,"sstableCount":3}`))
		case "/api/set":
			if r.Method != http.MethodPost {
				http.Error(w, "method", http.StatusMethodNotAllowed)
				return
			}
			gotSetType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotSet)
			_, _ = w.Write([]byte("OK"))
		case "/api/get":
			gotQueryKey = r.URL.Query().Get("key")
			if gotQueryKey == "user:1" {
				_, _ = w.Write([]byte("Alice"))
				return
			}
			_, _ = w.Write([]byte(NotFound))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	stats, err := c.FetchStats(ctx)
	if err != nil {
		t.Fatalf("FetchStats returned error: %v", err)
	}
	if stats.MemTableSize != 120 || stats.SSTableCount != 3 {
		t.Fatalf("FetchStats = %#v, want {120 3}", stats)
	}

	if err := c.Set(ctx, "user:1", "Alice"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if gotSet.Key != "user:1" || gotSet.Value != "Alice" {
		t.Fatalf("Set payload = %#v, want user:1=Alice", gotSet)
	}
	if gotSetType != "application/json" {
		t.Fatalf("Set Content-Type = %q, want application/json", gotSetType)
	}

	got, err := c.Get(ctx, "user:1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != "Alice" {
		t.Fatalf("Get = %q, want Alice", got)
	}

	got, err = c.Get(ctx, "a&b c")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got != NotFound || !IsNotFound(got) {
		t.Fatalf("Get = %q, want %q", got, NotFound)
	}
	if gotQueryKey != "a&b c" {
		t.Fatalf("query key = %q, want %q", gotQueryKey, "a&b c")
	}

	if !strings.HasPrefix(gotAgent, "lsmdash/") {
		t.Fatalf("User-Agent = %q, want lsmdash/*", gotAgent)
	}
	seen := make(map[string]bool)
	for _, id := range gotIDs {
		if id == "" || seen[id] {
			t.Fatalf("request ids = %v, want unique non-empty ids", gotIDs)
		}
		seen[id] = true
	}
}

func TestClient_SetAcceptsAny2xx(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set returned error: %v, want nil for 204", err)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/stats":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/set":
			http.Error(w, "Key and Value are required", http.StatusBadRequest)
		case "/api/get":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchStats(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchStats error = %v, want decode response error", err)
	}
	if RequestIDOf(err) == "" {
		t.Fatalf("FetchStats error carries no request id")
	}

	err = c.Set(context.Background(), "k", "v")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusBadRequest {
		t.Fatalf("Set error = %v, want StatusError 400", err)
	}

	_, err = c.Get(context.Background(), "k")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("Get error = %v, want status 500 error", err)
	}
}

func TestClient_FetchStatsRejectsMalformedBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"null", "null", "missing memTableSize/sstableCount"},
		{"unrelated object", `{"status":"up"}`, "missing memTableSize/sstableCount"},
		{"one field", `{"memTableSize":10}`, "missing sstableCount"},
		{"trailing garbage", `{"memTableSize":1,"sstableCount":2}<html>`, "trailing data"},
		{"second object", `{"memTableSize":1,"sstableCount":2}{}`, "trailing data"},
		{"wrong type", `{"memTableSize":"big","sstableCount":2}`, "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL, time.Second)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			stats, err := c.FetchStats(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("FetchStats(%s) = %+v, %v; want error containing %q", tt.body, stats, err, tt.want)
			}
			if RequestIDOf(err) == "" {
				t.Fatalf("FetchStats error carries no request id")
			}
		})
	}
}

func TestClient_FetchStatsAcceptsZeroCountersAndTrailingNewline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"memTableSize\":0,\"sstableCount\":0}\n"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	stats, err := c.FetchStats(context.Background())
	if err != nil {
		t.Fatalf("FetchStats returned error: %v", err)
	}
	if stats != (Stats{}) {
		t.Fatalf("FetchStats = %+v, want zero stats", stats)
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	c, err := NewClient(addr, time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchStats(context.Background())
	if err == nil || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("FetchStats error = %v, want execute request error", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchStats(context.Background()); err == nil {
		t.Fatalf("FetchStats on nil client returned nil error")
	}
	if err := c.Set(context.Background(), "k", "v"); err == nil {
		t.Fatalf("Set on nil client returned nil error")
	}
	if _, err := c.Get(context.Background(), "k"); err == nil {
		t.Fatalf("Get on nil client returned nil error")
	}
	if c.BaseURL() != "" {
		t.Fatalf("BaseURL on nil client = %q, want empty", c.BaseURL())
	}
}
