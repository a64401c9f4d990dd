package reqrestests

import (
	"os"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/harness"
)

// RunReqresTestSuite runs every contract test against the API that the harness points to.
func RunReqresTestSuite(
	harness *harness.TestHarness,
	filter ctest.Filter,
	testLogger ctest.TestLogger,
	fixtures Fixtures,
) ctest.Results {
	if rf, ok := filter.(ctest.RegexFilters); ok {
		ctest.PrintFilterDescription(os.Stdout, rf)
	}

	config := ctest.TestConfiguration{
		Filter:     filter,
		TestLogger: testLogger,
		Context: ReqresTestContext{
			harness:  harness,
			fixtures: fixtures,
		},
	}

	return ctest.Run(config, doAllTests)
}

func doAllTests(t *ctest.T) {
	t.Run("users", doUsersTests)
	t.Run("register", doRegisterTests)
	t.Run("login", doLoginTests)
	t.Run("resources", doResourcesTests)
}
