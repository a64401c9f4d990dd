package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakachnadzeya/reqres-contract-tests/framework"
)

func jsonHeaders() http.Header {
	return http.Header{"Content-Type": {"application/json"}}
}

func TestNewSessionRejectsInvalidBaseURL(t *testing.T) {
	for _, u := range []string{"", "reqres.in", "ftp://reqres.in", "http://", "://bad"} {
		t.Run(u, func(t *testing.T) {
			_, err := NewSession(u)
			assert.Error(t, err)
		})
	}
}

func TestNewSessionRejectsInvalidOptions(t *testing.T) {
	_, err := NewSession("http://localhost", WithTimeout(0))
	assert.Error(t, err)

	_, err = NewSession("http://localhost", WithHeaderLine("no colon here"))
	assert.Error(t, err)

	_, err = NewSession("http://localhost", WithHeader(" ", "x"))
	assert.Error(t, err)
}

func TestGetBuildsURLAndHeaders(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, jsonHeaders(), []byte(`{"page":2}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		s, err := NewSession(server.URL+"/", WithHeader("x-api-key", "reqres-free-v1"))
		require.NoError(t, err)

		resp, err := s.Get(context.Background(), "/api/users", map[string]string{"per_page": "6", "page": "2"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 2, resp.JSON.GetByKey("page").IntValue())
		assert.NoError(t, resp.JSONErr)

		r := <-requestsCh
		assert.Equal(t, "GET", r.Request.Method)
		assert.Equal(t, "/api/users", r.Request.URL.Path)
		assert.Equal(t, "page=2&per_page=6", r.Request.URL.RawQuery)
		assert.Equal(t, "application/json", r.Request.Header.Get("Accept"))
		assert.Equal(t, "reqres-free-v1", r.Request.Header.Get("X-Api-Key"))
		assert.Equal(t, "", r.Request.Header.Get("Content-Type"))
		assert.Len(t, r.Body, 0)
	})
}

func TestBaseURLPathPrefixIsKept(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(204))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		s, err := NewSession(server.URL + "/prefix/")
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/prefix/", s.BaseURL())

		_, err = s.Delete(context.Background(), "api/users/2")
		require.NoError(t, err)

		r := <-requestsCh
		assert.Equal(t, "DELETE", r.Request.Method)
		assert.Equal(t, "/prefix/api/users/2", r.Request.URL.Path)
	})
}

func TestBodyMethodsSendJSON(t *testing.T) {
	body := ldvalue.ObjectBuild().SetString("name", "Kate").SetString("job", "leader").Build()
	calls := map[string]func(*Session) (Response, error){
		"POST":  func(s *Session) (Response, error) { return s.Post(context.Background(), "/api/users", body) },
		"PUT":   func(s *Session) (Response, error) { return s.Put(context.Background(), "/api/users/23", body) },
		"PATCH": func(s *Session) (Response, error) { return s.Patch(context.Background(), "/api/users/23", body) },
	}
	for method, call := range calls {
		t.Run(method, func(t *testing.T) {
			handler, requestsCh := httphelpers.RecordingHandler(
				httphelpers.HandlerWithResponse(201, jsonHeaders(), []byte(`{"name":"Kate"}`)))
			httphelpers.WithServer(handler, func(server *httptest.Server) {
				s, err := NewSession(server.URL)
				require.NoError(t, err)

				resp, err := call(s)
				require.NoError(t, err)
				assert.Equal(t, 201, resp.StatusCode)
				assert.Equal(t, "Kate", resp.JSON.GetByKey("name").StringValue())

				r := <-requestsCh
				assert.Equal(t, method, r.Request.Method)
				assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
				assert.JSONEq(t, `{"name":"Kate","job":"leader"}`, string(r.Body))
			})
		})
	}
}

func TestErrorStatusIsNotAnError(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(404, jsonHeaders(), []byte(`{}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		s, err := NewSession(server.URL)
		require.NoError(t, err)

		resp, err := s.Get(context.Background(), "/api/users/23", nil)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, "{}", resp.Text())
		assert.Equal(t, "HTTP 404: {}", resp.String())
	})
}

func TestNonJSONBody(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(200, http.Header{"Content-Type": {"text/html"}}, []byte(`<html>`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		s, err := NewSession(server.URL)
		require.NoError(t, err)

		resp, err := s.Get(context.Background(), "/", nil)
		require.NoError(t, err)
		assert.Equal(t, ldvalue.Null(), resp.JSON)
		assert.Error(t, resp.JSONErr)
		assert.Equal(t, "<html>", resp.Text())
	})
}

func TestEmptyBody(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(204), func(server *httptest.Server) {
		s, err := NewSession(server.URL)
		require.NoError(t, err)

		resp, err := s.Delete(context.Background(), "/api/users/2")
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
		assert.True(t, errors.Is(resp.JSONErr, ErrEmptyBody))
	})
}

func TestTransportError(t *testing.T) {
	httphelpers.WithServer(httphelpers.BrokenConnectionHandler(), func(server *httptest.Server) {
		s, err := NewSession(server.URL)
		require.NoError(t, err)

		_, err = s.Get(context.Background(), "/api/users", nil)
		require.Error(t, err)
		var te *TransportError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "GET", te.Method)
		assert.Equal(t, server.URL+"/api/users", te.URL)
		assert.NotNil(t, errors.Unwrap(err))
	})
}

func TestTimeoutIsTransportError(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
		w.WriteHeader(200)
	})
	httphelpers.WithServer(slow, func(server *httptest.Server) {
		s, err := NewSession(server.URL, WithTimeout(50*time.Millisecond))
		require.NoError(t, err)

		_, err = s.Get(context.Background(), "/", nil)
		var te *TransportError
		assert.True(t, errors.As(err, &te))
	})
}

func TestRequestHeadersOverrideDefaults(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		s, err := NewSession(server.URL, WithHeaderLine("X-Trace: default"))
		require.NoError(t, err)

		_, err = s.Do(context.Background(), Request{Path: "/", Header: http.Header{"x-trace": {"override"}}})
		require.NoError(t, err)

		r := <-requestsCh
		assert.Equal(t, "GET", r.Request.Method)
		assert.Equal(t, []string{"override"}, r.Request.Header.Values("X-Trace"))
	})
}

func TestSessionLogsRequestsAndResponses(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(201, jsonHeaders(), []byte(`{"id":"1"}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		base, err := NewSession(server.URL)
		require.NoError(t, err)

		var logger framework.CapturingLogger
		s := base.WithLogger(&logger)
		_, err = s.Post(context.Background(), "/api/users", ldvalue.ObjectBuild().SetString("name", "jane").Build())
		require.NoError(t, err)

		output := logger.Output()
		require.Len(t, output, 2)
		assert.Equal(t, `>>> POST `+server.URL+`/api/users {"name":"jane"}`, output[0].Message)
		assert.Equal(t, `<<< 201 {"id":"1"}`, output[1].Message)

		_, err = base.Get(context.Background(), "/", nil)
		require.NoError(t, err)
		assert.Len(t, logger.Output(), 2)
	})
}
