package apiclient

import (
	"errors"
	"fmt"
)

// ErrEmptyBody is the Response.JSONErr of a response that had no body at all.
var ErrEmptyBody = errors.New("response body is empty")

// TransportError means that no HTTP response was received: the connection failed, the request
// timed out, or the body could not be read. HTTP error statuses are not transport errors.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
