// Package ctest is the contract-test runner. Tests are written against a T that behaves much like
// Go's testing.T, but the suite runs as ordinary application code against a live endpoint, so the
// runner controls filtering, debug output capture and result reporting itself.
package ctest
