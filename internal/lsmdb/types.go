package lsmdb

import (
	"errors"
	"fmt"
)

// NotFound is the body /api/get returns for a missing key.
const NotFound = "NOT_FOUND"

// Stats mirrors the payload returned by /api/stats.
type Stats struct {
	MemTableSize int64 `json:"memTableSize"`
	SSTableCount int   `json:"sstableCount"`
}

// statsPayload is the wire form of Stats; nil fields were absent.
type statsPayload struct {
	MemTableSize *int64 `json:"memTableSize"`
	SSTableCount *int   `json:"sstableCount"`
}

// SetRequest is the /api/set request body.
type SetRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// RequestError ties a failure to the X-Request-ID that was sent with it.
type RequestError struct {
	RequestID string
	Err       error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// RequestIDOf returns the request id carried by err, if any.
func RequestIDOf(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.RequestID
	}
	return ""
}

// IsNotFound reports whether a /api/get body is the missing-key sentinel.
func IsNotFound(body string) bool {
	return body == NotFound
}
