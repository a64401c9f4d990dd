package main

import (
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"os"
	"strings"

	"github.com/rakachnadzeya/reqres-contract-tests/framework"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/harness"
	"github.com/rakachnadzeya/reqres-contract-tests/mockreqres"
	"github.com/rakachnadzeya/reqres-contract-tests/reqrestests"
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("reqres-contract-tests v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		fmt.Println("To run only the failed tests:")
		fmt.Println("  " + params.rerunCommand(os.Args[0], results.FailedIDs()))
		os.Exit(1)
	}
}

func run(params commandParams) (*ctest.Results, error) {
	if params.skipFile != "" {
		if err := params.loadSkipFile(); err != nil {
			return nil, err
		}
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = framework.StdLogger(os.Stdout)
	}

	baseURL := params.baseURL
	if params.mock {
		fake := mockreqres.NewService(mockreqres.DefaultFixtureData(),
			framework.LoggerWithPrefix(mainDebugLogger, "[fake API] "))
		local, err := harness.StartLocalService(fake, mainDebugLogger)
		if err != nil {
			return nil, err
		}
		defer func() { _ = local.Close() }()
		baseURL = local.BaseURL()
	}

	h, err := harness.NewTestHarness(
		harness.Config{
			BaseURL:     baseURL,
			Headers:     params.headers,
			Timeout:     params.timeout,
			SchemaDir:   params.schemaDir,
			DebugLogger: mainDebugLogger,
		},
		os.Stdout,
	)
	if err != nil {
		return nil, err
	}

	consoleLogger := ctest.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	var testLogger ctest.TestLogger = consoleLogger
	var jUnitLogger *ctest.JUnitTestLogger
	if params.jUnitFile != "" {
		jUnitLogger = ctest.NewJUnitTestLogger(params.jUnitFile, "reqres-contract-tests", map[string]string{
			"baseURL": baseURL,
			"version": strings.TrimSpace(versionString),
		})
		testLogger = ctest.MultiTestLogger{consoleLogger, jUnitLogger}
	}

	fixtures := reqrestests.DefaultFixtures()
	if params.registerToken != "" {
		fixtures.RegisterToken = params.registerToken
	}

	results := reqrestests.RunReqresTestSuite(h, params.filters, testLogger, fixtures)

	fmt.Println()
	ctest.PrintResults(os.Stdout, results)

	if jUnitLogger != nil {
		if err := jUnitLogger.EndLog(); err != nil {
			return nil, fmt.Errorf("error writing log: %w", err)
		}
	}

	if params.recordFailures != "" {
		f, err := os.Create(params.recordFailures)
		if err != nil {
			return nil, fmt.Errorf("cannot create suppression file: %w", err)
		}
		for _, id := range results.FailedIDs() {
			fmt.Fprintln(f, id)
		}
		_ = f.Close()
	}

	return &results, nil
}
