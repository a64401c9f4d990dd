// Package framework contains the general-purpose infrastructure for running contract tests
// against an HTTP API. The base package holds shared types such as Logger; the other pieces
// live in subpackages:
//
// apiclient: a session that issues requests against a configured base URL.
//
// schemas: loading JSON Schema documents from a directory and validating bodies against them.
//
// ctest: a test scope framework similar to Go's testing package, run as application code.
//
// harness: the read-only configuration shared by every test in a run.
//
// The domain-specific code that knows which endpoints exist and what they should return is
// responsible for building requests, choosing schemas, and making assertions.
package framework
