package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rakachnadzeya/reqres-contract-tests/framework"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/helpers"
)

// DefaultTimeout is the transport timeout used if WithTimeout is not specified.
const DefaultTimeout = 10 * time.Second

type sessionConfig struct {
	headers http.Header
	timeout time.Duration
	client  *http.Client
	logger  framework.Logger
}

// SessionOption is an optional parameter for NewSession.
type SessionOption = helpers.ConfigOptionFunc[sessionConfig]

// WithHeader adds a header that is sent with every request, such as an API key.
func WithHeader(name, value string) SessionOption {
	return func(c *sessionConfig) error {
		if strings.TrimSpace(name) == "" {
			return errors.New("header name cannot be empty")
		}
		c.headers.Add(name, value)
		return nil
	}
}

// WithHeaderLine is like WithHeader, but takes a "Name: value" string as given on a command line.
func WithHeaderLine(line string) SessionOption {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return func(*sessionConfig) error {
			return fmt.Errorf("header %q is not in the form \"Name: value\"", line)
		}
	}
	return WithHeader(strings.TrimSpace(name), strings.TrimSpace(value))
}

// WithTimeout sets the overall time limit for each request. Exceeding it is a transport error.
func WithTimeout(timeout time.Duration) SessionOption {
	return func(c *sessionConfig) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		c.timeout = timeout
		return nil
	}
}

// WithHTTPClient makes the session use a specific client. Its Timeout is overridden by the
// session's timeout.
func WithHTTPClient(client *http.Client) SessionOption {
	return func(c *sessionConfig) error {
		c.client = client
		return nil
	}
}

// WithLogger sets the logger that requests and responses are written to.
func WithLogger(logger framework.Logger) SessionOption {
	return func(c *sessionConfig) error {
		c.logger = logger
		return nil
	}
}
