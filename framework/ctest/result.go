package ctest

import (
	"strings"
)

// Results is the outcome of a whole run.
type Results struct {
	Tests               []TestResult
	Failures            []TestResult
	NonCriticalFailures []TestResult
}

// TestResult is the outcome of one test scope.
type TestResult struct {
	TestID      TestID
	Errors      []error
	NonCritical bool
	Explanation string
}

// OK is true if nothing failed, not counting non-critical failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// FailedIDs returns the IDs of all critical failures in the order they finished.
func (r Results) FailedIDs() []TestID {
	ret := make([]TestID, 0, len(r.Failures))
	for _, f := range r.Failures {
		ret = append(ret, f.TestID)
	}
	return ret
}

// TestID is the path of names from the top-level test down to a subtest.
type TestID []string

func (t TestID) String() string {
	return strings.Join(t, "/")
}

// Plus returns a new TestID with one more name added; the receiver is not modified.
func (t TestID) Plus(name string) TestID {
	return append(append(TestID(nil), t...), name)
}
