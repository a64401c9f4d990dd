package reqrestests

import (
	"context"
	"errors"
	"fmt"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/require"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
	h "github.com/rakachnadzeya/reqres-contract-tests/framework/helpers"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/schemas"
)

// sendRequest sends a request with the shared session, logging to the test's debug output. A
// transport error ends the test.
func sendRequest(t *ctest.T, req apiclient.Request) apiclient.Response {
	t.Helper()
	session := requireContext(t).harness.Session(t.DebugLogger())
	resp, err := session.Do(context.Background(), req)
	require.NoError(t, err)
	return resp
}

func get(path string, query map[string]string) apiclient.Request {
	return apiclient.Request{Method: "GET", Path: path, Query: query}
}

func post(path string, body ldvalue.Value) apiclient.Request {
	return apiclient.Request{Method: "POST", Path: path, Body: body}
}

func put(path string, body ldvalue.Value) apiclient.Request {
	return apiclient.Request{Method: "PUT", Path: path, Body: body}
}

// describeBody renders a response for failure output. A JSON body is shown with its object
// properties sorted, so that a field can be found by eye in a long body.
func describeBody(resp apiclient.Response) string {
	if resp.JSONErr != nil {
		return fmt.Sprintf("HTTP %d (%s): %s", resp.StatusCode, resp.JSONErr, resp.Text())
	}
	return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, h.CanonicalizedJSONString(resp.JSON))
}

// requireSchemaMatch ends the test unless the response body conforms to the named schema. A
// schema that can't be loaded also ends the test, with a message saying so.
func requireSchemaMatch(t *ctest.T, resp apiclient.Response, schemaName string) {
	t.Helper()
	err := requireContext(t).harness.ValidateJSONAgainstSchema(resp.Body, schemaName)
	if err == nil {
		return
	}
	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		t.Debug("Schema %s:\n%s", schemaName, describeSchema(t, schemaName))
		require.Fail(t, "response does not match schema "+schemaName, "%s\n%s", ve.Details, describeBody(resp))
	}
	require.NoError(t, err, "could not use schema %s", schemaName)
}

func describeSchema(t *ctest.T, name string) string {
	doc, err := requireContext(t).harness.LoadSchema(name)
	if err != nil {
		return err.Error()
	}
	return string(doc.Raw)
}

// schemaTest returns a test that sends a request and validates the response against a schema.
func schemaTest(schemaName string, makeRequest func(Fixtures) apiclient.Request) func(*ctest.T) {
	return func(t *ctest.T) {
		resp := sendRequest(t, makeRequest(requireContext(t).fixtures))
		requireSchemaMatch(t, resp, schemaName)
	}
}
