package reqrestests

import (
	"fmt"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	h "github.com/rakachnadzeya/reqres-contract-tests/framework/helpers"
)

// The functions in this file are for convenient use of the matchers API with responses and
// parsed JSON bodies. For more information, see matchers.Transform.

func StatusCode() m.MatcherTransform {
	return m.Transform(
		"status code",
		func(value interface{}) (interface{}, error) {
			return value.(apiclient.Response).StatusCode, nil
		}).
		EnsureInputValueType(apiclient.Response{})
}

func BodyText() m.MatcherTransform {
	return m.Transform(
		"body text",
		func(value interface{}) (interface{}, error) {
			return value.(apiclient.Response).Text(), nil
		}).
		EnsureInputValueType(apiclient.Response{})
}

func JSONBody() m.MatcherTransform {
	return m.Transform(
		"JSON body",
		func(value interface{}) (interface{}, error) {
			r := value.(apiclient.Response)
			if r.JSONErr != nil {
				return nil, r.JSONErr
			}
			return r.JSON, nil
		}).
		EnsureInputValueType(apiclient.Response{})
}

// HasStatus is a shortcut for StatusCode().Should(m.Equal(status)).
func HasStatus(status int) m.Matcher {
	return StatusCode().Should(m.Equal(status))
}

// ValueAt navigates into an ldvalue.Value. Each step is a property name (string) or an array
// index (int). A missing property or index yields a null value, not an error, so that the
// failure is reported against the expected value.
func ValueAt(steps ...interface{}) m.MatcherTransform {
	return m.Transform(
		describePath(steps),
		func(value interface{}) (interface{}, error) {
			v := value.(ldvalue.Value)
			for _, step := range steps {
				switch s := step.(type) {
				case string:
					v = v.GetByKey(s)
				case int:
					v = v.GetByIndex(s)
				default:
					return nil, fmt.Errorf("invalid path step %v", step)
				}
			}
			return v, nil
		}).
		EnsureInputValueType(ldvalue.Value{})
}

// ArrayLength transforms an ldvalue.Value array into its number of elements. Anything that is
// not an array is an error.
func ArrayLength() m.MatcherTransform {
	return m.Transform(
		"array length",
		func(value interface{}) (interface{}, error) {
			v := value.(ldvalue.Value)
			if v.Type() != ldvalue.ArrayType {
				return nil, fmt.Errorf("expected an array but got %s", v.JSONString())
			}
			return v.Count(), nil
		}).
		EnsureInputValueType(ldvalue.Value{})
}

// NotEmptyValue matches an ldvalue.Value that is present and is not an empty string. A number,
// including zero, counts as present.
func NotEmptyValue() m.Matcher {
	isEmpty := func(value interface{}) bool {
		v, ok := value.(ldvalue.Value)
		return !ok || v.IsNull() || (v.IsString() && v.StringValue() == "")
	}
	return m.New(
		func(value interface{}) bool { return !isEmpty(value) },
		func() string { return "is present and not an empty string" },
		func(value interface{}) string {
			if v, ok := value.(ldvalue.Value); ok {
				return fmt.Sprintf("expected a non-empty value, got %s", v.JSONString())
			}
			return fmt.Sprintf("expected an ldvalue.Value, got %T", value)
		},
	)
}

// EqualValue compares an ldvalue.Value to any value that has the same JSON representation.
func EqualValue(expected interface{}) m.Matcher {
	return m.JSONEqual(expected)
}

func describePath(steps []interface{}) string {
	path := ""
	for _, s := range steps {
		path += h.IfElse(path == "", "", ".") + fmt.Sprint(s)
	}
	return "value at " + h.IfElse(path == "", "(root)", path)
}
