package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/rakachnadzeya/reqres-contract-tests/framework"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/schemas"
)

// DefaultProbeTimeout is how long NewTestHarness keeps trying to reach the API if
// Config.ProbeTimeout is zero.
const DefaultProbeTimeout = 10 * time.Second

// Config is the configuration of a test run. It is fixed once the harness is created.
type Config struct {
	// BaseURL is the root of the API under test, such as "https://reqres.in".
	BaseURL string

	// Headers are default headers in "Name: value" form, sent with every request.
	Headers []string

	// Timeout is the transport timeout of each request; zero means apiclient.DefaultTimeout.
	Timeout time.Duration

	// SchemaDir is a directory to read schemas from instead of the ones built into the program.
	SchemaDir string

	// ProbeTimeout is how long to wait for the API to become reachable at startup.
	ProbeTimeout time.Duration

	// DebugLogger receives harness-level debug output. May be nil.
	DebugLogger framework.Logger
}

// TestHarness holds everything the suite needs to talk to the API: the HTTP session, the schema
// loader and the validator. It contains no endpoint-specific test logic.
type TestHarness struct {
	config    Config
	session   *apiclient.Session
	loader    *schemas.Loader
	validator *schemas.Validator
	logger    framework.Logger
}

// NewTestHarness creates a TestHarness and verifies that the API is reachable. Progress of the
// reachability check is written to startupOutput.
func NewTestHarness(config Config, startupOutput io.Writer) (*TestHarness, error) {
	if config.DebugLogger == nil {
		config.DebugLogger = framework.NullLogger()
	}
	if config.ProbeTimeout == 0 {
		config.ProbeTimeout = DefaultProbeTimeout
	}
	options := []apiclient.SessionOption{apiclient.WithLogger(config.DebugLogger)}
	for _, h := range config.Headers {
		options = append(options, apiclient.WithHeaderLine(h))
	}
	if config.Timeout != 0 {
		options = append(options, apiclient.WithTimeout(config.Timeout))
	}
	session, err := apiclient.NewSession(config.BaseURL, options...)
	if err != nil {
		return nil, err
	}

	loader, schemaSource := schemas.NewEmbeddedLoader(), "built-in schemas"
	if config.SchemaDir != "" {
		if loader, err = schemas.NewDirLoader(config.SchemaDir); err != nil {
			return nil, err
		}
		schemaSource = config.SchemaDir
	}
	schemaNames, err := loader.Names()
	if err != nil {
		return nil, fmt.Errorf("cannot list schemas in %s: %w", schemaSource, err)
	}
	if len(schemaNames) == 0 {
		return nil, fmt.Errorf("no schema files found in %s", schemaSource)
	}
	fmt.Fprintf(startupOutput, "Using %d schema files from %s\n", len(schemaNames), schemaSource)

	h := &TestHarness{
		config:    config,
		session:   session,
		loader:    loader,
		validator: schemas.NewValidator(),
		logger:    config.DebugLogger,
	}

	if err := probeAPI(session, config.ProbeTimeout, startupOutput); err != nil {
		return nil, fmt.Errorf("API at %s is not reachable: %w", config.BaseURL, err)
	}
	return h, nil
}

// Config returns the configuration the harness was created with.
func (h *TestHarness) Config() Config {
	return h.config
}

// Session returns the shared session, writing its request log to the given logger. If logger is
// nil, the harness's debug logger is used.
func (h *TestHarness) Session(logger framework.Logger) *apiclient.Session {
	if logger == nil {
		logger = h.logger
	}
	return h.session.WithLogger(logger)
}

// LoadSchema reads a schema document by file name.
func (h *TestHarness) LoadSchema(name string) (schemas.Document, error) {
	return h.loader.Load(name)
}

// ValidateAgainstSchema loads the named schema and validates a parsed response body against it.
// The error is a *schemas.NotFoundError, *schemas.ParseError or *schemas.ValidationError.
func (h *TestHarness) ValidateAgainstSchema(body ldvalue.Value, name string) error {
	doc, err := h.loader.Load(name)
	if err != nil {
		return err
	}
	return h.validator.Validate(body, doc)
}

// ValidateJSONAgainstSchema is like ValidateAgainstSchema, but takes the body as received.
func (h *TestHarness) ValidateJSONAgainstSchema(body []byte, name string) error {
	doc, err := h.loader.Load(name)
	if err != nil {
		return err
	}
	return h.validator.ValidateJSON(body, doc)
}
