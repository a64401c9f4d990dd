package reqrestests

import (
	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/harness"
)

// ReqresTestContext is the suite-wide state that every test can reach through its T.
type ReqresTestContext struct {
	harness  *harness.TestHarness
	fixtures Fixtures
}

func requireContext(t *ctest.T) ReqresTestContext {
	if c, ok := t.Context().(ReqresTestContext); ok {
		return c
	}
	panic("ReqresTestContext was not included in the global test configuration!" +
		" This is a basic mistake in the initialization logic.")
}
