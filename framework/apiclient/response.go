package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Request describes one call. Path is relative to the session's base URL.
type Request struct {
	Method string
	Path   string
	Query  map[string]string
	// Body is serialized as JSON if it is not null.
	Body   ldvalue.Value
	Header http.Header
}

// Response is an HTTP response with the body already read. The session does not judge the
// status code or the content; that is up to the caller.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// JSON is the parsed body, or a null value if the body was not valid JSON.
	JSON ldvalue.Value

	// JSONErr is the reason JSON is null, if the body was empty or not valid JSON.
	JSONErr error
}

func newResponse(statusCode int, header http.Header, body []byte) Response {
	r := Response{StatusCode: statusCode, Header: header, Body: body}
	if len(body) == 0 {
		r.JSONErr = ErrEmptyBody
		return r
	}
	if err := json.Unmarshal(body, &r.JSON); err != nil {
		r.JSON = ldvalue.Null()
		r.JSONErr = fmt.Errorf("response body is not valid JSON: %w", err)
	}
	return r
}

// Text returns the body exactly as received.
func (r Response) Text() string {
	return string(r.Body)
}

// String describes the response for failure messages.
func (r Response) String() string {
	return fmt.Sprintf("HTTP %d: %s", r.StatusCode, r.Body)
}
