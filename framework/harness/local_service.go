package harness

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rakachnadzeya/reqres-contract-tests/framework"
)

var ignoredServerErrors = []*regexp.Regexp{ //nolint:gochecknoglobals
	regexp.MustCompile(`broken pipe`),
	regexp.MustCompile(`connection reset by peer`),
}

// LocalService is an HTTP server on a loopback port, used to run the suite against an
// in-process implementation of the API.
type LocalService struct {
	server  *http.Server
	baseURL string
	done    chan struct{}
}

// StartLocalService starts serving handler on an ephemeral loopback port. The returned service
// is accepting connections by the time this returns.
func StartLocalService(handler http.Handler, debugLogger framework.Logger) (*LocalService, error) {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("could not start local service: %w", err)
	}
	s := &LocalService{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second, // arbitrary but non-infinite timeout to avoid Slowloris Attack
			ErrorLog:          log.New(newFilteredWriter(loggerWriter{debugLogger}, ignoredServerErrors...), "", 0),
		},
		baseURL: "http://" + listener.Addr().String(),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			debugLogger.Printf("Local service stopped: %s", err)
		}
	}()
	debugLogger.Printf("Started local service at %s", s.baseURL)
	return s, nil
}

// BaseURL returns the root URL of the service, such as "http://127.0.0.1:53211".
func (s *LocalService) BaseURL() string {
	return s.baseURL
}

// Close stops the server and waits for it to exit.
func (s *LocalService) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.server.Shutdown(ctx)
	<-s.done
	return err
}

type loggerWriter struct {
	logger framework.Logger
}

func (w loggerWriter) Write(data []byte) (int, error) {
	w.logger.Printf("%s", strings.TrimRight(string(data), "\n"))
	return len(data), nil
}
