package reqrestests

import (
	"errors"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"github.com/stretchr/testify/assert"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/helpers"
)

func makeResponse(status int, body string) apiclient.Response {
	resp := apiclient.Response{StatusCode: status, Body: []byte(body)}
	resp.JSON = ldvalue.Parse(resp.Body)
	if resp.JSON.IsNull() && body != "null" {
		resp.JSONErr = errors.New("not JSON")
	}
	return resp
}

func assertMatcherPasses(t *testing.T, matcher m.Matcher, value interface{}) {
	t.Helper()
	pass, desc := matcher.Test(value)
	assert.True(t, pass, desc)
}

func assertMatcherFails(t *testing.T, matcher m.Matcher, value interface{}) {
	t.Helper()
	pass, desc := matcher.Test(value)
	assert.False(t, pass)
	assert.NotEmpty(t, desc)
}

func TestHasStatus(t *testing.T) {
	resp := makeResponse(404, "{}")
	assertMatcherPasses(t, HasStatus(404), resp)
	assertMatcherFails(t, HasStatus(200), resp)
}

func TestBodyText(t *testing.T) {
	resp := makeResponse(404, "{}")
	assertMatcherPasses(t, BodyText().Should(m.Equal("{}")), resp)
	assertMatcherFails(t, BodyText().Should(m.Equal("{ }")), resp)
}

func TestJSONBody(t *testing.T) {
	assertMatcherPasses(t, JSONBody().Should(ValueAt("page").Should(EqualValue(2))), makeResponse(200, `{"page":2}`))
	assertMatcherFails(t, JSONBody().Should(ValueAt("page").Should(EqualValue(2))), makeResponse(200, `oops`))
}

func TestValueAt(t *testing.T) {
	value := ldvalue.Parse([]byte(`{"data":[{"id":1,"name":"cerulean"}],"page":2}`))

	assertMatcherPasses(t, ValueAt("page").Should(EqualValue(2)), value)
	assertMatcherPasses(t, ValueAt("data", 0, "name").Should(EqualValue("cerulean")), value)
	assertMatcherPasses(t, ValueAt("data", 1, "name").Should(EqualValue(nil)), value)
	assertMatcherFails(t, ValueAt("data", 0, "id").Should(EqualValue(2)), value)
	assertMatcherFails(t, ValueAt(1.5).Should(EqualValue(nil)), value)
}

func TestArrayLength(t *testing.T) {
	assertMatcherPasses(t, ArrayLength().Should(m.Equal(3)), ldvalue.ArrayOf(ldvalue.Int(1), ldvalue.Int(2), ldvalue.Int(3)))
	assertMatcherFails(t, ArrayLength().Should(m.Equal(6)), ldvalue.ArrayOf())
	assertMatcherFails(t, ArrayLength().Should(m.Equal(0)), ldvalue.String("x"))
}

func TestNotEmptyValue(t *testing.T) {
	assertMatcherPasses(t, NotEmptyValue(), ldvalue.String("QpwL5tke4Pnpja7X4"))
	assertMatcherPasses(t, NotEmptyValue(), ldvalue.Int(0))
	assertMatcherFails(t, NotEmptyValue(), ldvalue.String(""))
	assertMatcherFails(t, NotEmptyValue(), ldvalue.Null())
	assertMatcherFails(t, NotEmptyValue(), "x")
}

func TestMatchersReportThroughTestContext(t *testing.T) {
	var r helpers.TestRecorder
	m.In(&r).Assert(makeResponse(500, ""), HasStatus(200))
	assert.Len(t, r.Errors, 1)
	assert.False(t, r.Terminated)

	r = helpers.TestRecorder{}
	m.In(&r).Require(makeResponse(500, ""), HasStatus(200))
	assert.True(t, r.Terminated)
}
