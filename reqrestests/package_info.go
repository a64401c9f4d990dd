// Package reqrestests contains the contract tests for the reqres API.
//
// Tests in this package use other packages as follows:
//
// ctest: the basic test scope framework
//
// harness: the HTTP session, schema loader and validator shared by all tests
//
// servicedef: endpoint paths and request payloads
package reqrestests
