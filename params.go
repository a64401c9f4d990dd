package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"gopkg.in/yaml.v3"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
)

const defaultBaseURL = "https://reqres.in"

type commandParams struct {
	baseURL        string
	headers        headerList
	timeout        time.Duration
	schemaDir      string
	filters        ctest.RegexFilters
	skipFile       string
	recordFailures string
	debug          bool
	debugAll       bool
	jUnitFile      string
	registerToken  string
	mock           bool
}

// headerList implements flag.Value, so -header can be repeated.
type headerList []string

func (h headerList) String() string { return strings.Join(h, ", ") }

func (h *headerList) Set(value string) error {
	if !strings.Contains(value, ":") {
		return fmt.Errorf(`header must be in "Name: value" form: %q`, value)
	}
	*h = append(*h, value)
	return nil
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.baseURL, "url", defaultBaseURL, "base URL of the API under test")
	fs.Var(&c.headers, "header", `"Name: value" header to send with every request (can be repeated)`)
	fs.DurationVar(&c.timeout, "timeout", apiclient.DefaultTimeout, "HTTP timeout of each request")
	fs.StringVar(&c.schemaDir, "schemas", "", "directory to read JSON schemas from instead of the built-in ones")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.skipFile, "skip-file", "", "file of test IDs to skip, one per line or as a YAML list")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write the IDs of failed tests to this file")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.StringVar(&c.registerToken, "register-token", "", "expected registration token, if the API's fixture data has changed")
	fs.BoolVar(&c.mock, "mock", false, "run against a built-in fake of the API instead of -url")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	if c.timeout <= 0 {
		fmt.Fprintln(os.Stderr, "-timeout must be positive")
		return false
	}
	return true
}

// loadSkipFile adds every test ID in the skip file to the -skip filters.
func (c *commandParams) loadSkipFile() error {
	data, err := os.ReadFile(c.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %w", err)
	}
	ids, err := parseSkipFile(data)
	if err != nil {
		return fmt.Errorf("while processing suppression file: %w", err)
	}
	for _, id := range ids {
		testID := ctest.TestID(strings.Split(id, "/"))
		c.filters.MustNotMatch = append(c.filters.MustNotMatch, ctest.ExactTestIDPattern(testID))
	}
	return nil
}

// parseSkipFile accepts either a YAML list of test IDs or plain text with one ID per line. Blank
// lines and lines starting with "#" are ignored in plain text.
func parseSkipFile(data []byte) ([]string, error) {
	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil && len(list) != 0 {
		return list, nil
	}
	var ret []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ret = append(ret, line)
	}
	return ret, scanner.Err()
}

// rerunCommand builds a shell command line that runs only the given tests, with the same target
// as this run.
func (c *commandParams) rerunCommand(program string, ids []ctest.TestID) string {
	args := []string{program}
	if c.mock {
		args = append(args, "-mock")
	} else {
		args = append(args, "-url", c.baseURL)
	}
	if c.schemaDir != "" {
		args = append(args, "-schemas", c.schemaDir)
	}
	if c.registerToken != "" {
		args = append(args, "-register-token", c.registerToken)
	}
	for _, id := range ids {
		args = append(args, "-run", ctest.ExactTestIDPattern(id).String())
	}
	return shellescape.QuoteCommand(args)
}
