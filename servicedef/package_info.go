// Package servicedef describes the part of the reqres REST API that the contract tests cover:
// endpoint paths, request payloads and response shapes.
//
// It is shared by the test suite, which sends these requests, and by the in-process fake of the
// API, which answers them.
package servicedef
