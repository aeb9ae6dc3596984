package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for backend operations
var (
	// ErrServerOffline indicates the library server is unreachable
	ErrServerOffline = errors.New("library server is unreachable")
)

// RequestError is a non-2xx backend response. Message carries the
// server-provided "error" body when one was present.
type RequestError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// UserMessage extracts the server-provided message from an error, when the
// error is a RequestError carrying one. The fallback is returned otherwise.
func UserMessage(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
