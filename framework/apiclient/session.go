// Package apiclient provides Session, a small HTTP client preconfigured with a base URL, default
// headers and a transport timeout, for calling a JSON REST API.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/rakachnadzeya/reqres-contract-tests/framework"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/helpers"
)

// Session sends requests relative to a base URL. It is immutable after construction and safe for
// concurrent use.
type Session struct {
	baseURL *url.URL
	headers http.Header
	client  *http.Client
	logger  framework.Logger
}

// NewSession creates a Session. The base URL must be an absolute http or https URL; any path it
// has is kept as a prefix of every request path.
func NewSession(baseURL string, options ...SessionOption) (*Session, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", baseURL)
	}
	u.RawQuery, u.Fragment = "", ""

	config := sessionConfig{headers: make(http.Header), timeout: DefaultTimeout}
	if err := helpers.ApplyOptions(&config, options...); err != nil {
		return nil, err
	}

	client := http.Client{}
	if config.client != nil {
		client = *config.client
	}
	client.Timeout = config.timeout

	return &Session{
		baseURL: u,
		headers: config.headers,
		client:  &client,
		logger:  helpers.IfElse(config.logger == nil, framework.NullLogger(), config.logger),
	}, nil
}

// BaseURL returns the base URL the session was created with.
func (s *Session) BaseURL() string {
	return s.baseURL.String()
}

// WithLogger returns a copy of the session that writes to a different logger. The copy shares the
// same transport.
func (s *Session) WithLogger(logger framework.Logger) *Session {
	copied := *s
	copied.logger = helpers.IfElse(logger == nil, framework.NullLogger(), logger)
	return &copied
}

// Get sends a GET request. Query parameters may be nil.
func (s *Session) Get(ctx context.Context, path string, query map[string]string) (Response, error) {
	return s.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with a JSON body.
func (s *Session) Post(ctx context.Context, path string, body ldvalue.Value) (Response, error) {
	return s.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with a JSON body.
func (s *Session) Put(ctx context.Context, path string, body ldvalue.Value) (Response, error) {
	return s.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (s *Session) Patch(ctx context.Context, path string, body ldvalue.Value) (Response, error) {
	return s.Do(ctx, Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (s *Session) Delete(ctx context.Context, path string) (Response, error) {
	return s.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

// Do sends a request and reads the whole response. It returns a *TransportError if no response
// could be obtained; any HTTP status, including 4xx and 5xx, is returned as a Response.
func (s *Session) Do(ctx context.Context, r Request) (Response, error) {
	method := helpers.IfElse(r.Method == "", http.MethodGet, r.Method)
	target := s.resolve(r.Path, r.Query)

	var body []byte
	if !r.Body.IsNull() {
		body = []byte(r.Body.JSONString())
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return Response{}, &TransportError{Method: method, URL: target, Err: err}
	}
	for name, values := range s.headers {
		req.Header[name] = append([]string(nil), values...)
	}
	for name, values := range r.Header {
		req.Header[http.CanonicalHeaderKey(name)] = append([]string(nil), values...)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		s.logger.Printf(">>> %s %s %s", method, target, body)
	} else {
		s.logger.Printf(">>> %s %s", method, target)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Printf("<<< error: %s", err)
		return Response{}, &TransportError{Method: method, URL: target, Err: err}
	}
	respBody, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		s.logger.Printf("<<< %d, error reading body: %s", resp.StatusCode, err)
		return Response{}, &TransportError{Method: method, URL: target, Err: err}
	}
	s.logger.Printf("<<< %d %s", resp.StatusCode, respBody)

	return newResponse(resp.StatusCode, resp.Header, respBody), nil
}

func (s *Session) resolve(path string, query map[string]string) string {
	u := *s.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""
	if len(query) != 0 {
		values := make(url.Values, len(query))
		for k, v := range query {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode() // Encode sorts by key
	}
	return u.String()
}
