package core

import (
	"context"
	"fmt"
	"net/http"
)

// Gateway reaches the REST backend. Paths are relative to the configured
// base URL; responses are decoded into out when non-nil.
type Gateway interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string) error
}

// APIError is a non-2xx response from the backend. Message carries the
// server-provided "message" field when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: %s", http.StatusText(e.Status))
}
