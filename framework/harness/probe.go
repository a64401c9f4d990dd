package harness

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/helpers"
)

const probeInterval = 100 * time.Millisecond

// probeAPI sends HEAD requests to the base URL until one gets any HTTP response at all. The status
// doesn't matter: this only establishes that the API can be reached, not that it is correct.
func probeAPI(session *apiclient.Session, timeout time.Duration, output io.Writer) error {
	helpers.MustFprintf(output, "Connecting to API at %s", session.BaseURL())

	deadline := time.Now().Add(timeout)
	for {
		helpers.MustFprintf(output, ".")
		ctx, cancel := context.WithDeadline(context.Background(), deadline.Add(probeInterval))
		resp, err := session.Do(ctx, apiclient.Request{Method: http.MethodHead, Path: "/"})
		cancel()
		if err == nil {
			helpers.MustFprintln(output)
			helpers.MustFprintf(output, "API responded with status %d\n", resp.StatusCode)
			return nil
		}
		if !time.Now().Before(deadline) {
			helpers.MustFprintln(output)
			return fmt.Errorf("timed out, result of last request was: %w", err)
		}
		time.Sleep(probeInterval)
	}
}
