package reqrestests

import (
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

func doRegisterTests(t *ctest.T) {
	t.Run("successful", doRegisterSuccessfulTests)
	t.Run("unsuccessful", doRegisterUnsuccessfulTests)
}

func doLoginTests(t *ctest.T) {
	t.Run("successful", doLoginSuccessfulTests)
}

func registerRequest(f Fixtures) apiclient.Request {
	return post(servicedef.RegisterPath, f.RegisteredUser.AsValue())
}

func doRegisterSuccessfulTests(t *ctest.T) {
	t.Run("status", func(t *ctest.T) {
		resp := sendRequest(t, registerRequest(requireContext(t).fixtures))

		m.In(t).Assert(resp, HasStatus(200))
	})

	t.Run("token", func(t *ctest.T) {
		fixtures := requireContext(t).fixtures
		resp := sendRequest(t, registerRequest(fixtures))

		m.In(t).Require(resp, HasStatus(200))
		m.In(t).Assert(resp, JSONBody().Should(ValueAt("token").Should(EqualValue(fixtures.RegisterToken))))
	})

	t.Run("schema", schemaTest("post_user_register_successful.json", registerRequest))
}

func unsuccessfulRegisterRequest(f Fixtures) apiclient.Request {
	return post(servicedef.RegisterPath, f.UnregisteredUser.AsValue())
}

func doRegisterUnsuccessfulTests(t *ctest.T) {
	t.Run("response", func(t *ctest.T) {
		resp := sendRequest(t, unsuccessfulRegisterRequest(requireContext(t).fixtures))

		m.In(t).Assert(resp, HasStatus(400))
		m.In(t).Assert(resp, BodyText().Should(m.Equal(`{"error":"`+servicedef.ErrorMissingPassword+`"}`)))
	})

	t.Run("schema", schemaTest("post_user_register_unsuccessful.json", unsuccessfulRegisterRequest))
}

func loginRequest(f Fixtures) apiclient.Request {
	return post(servicedef.LoginPath, f.LoginUser.AsValue())
}

func doLoginSuccessfulTests(t *ctest.T) {
	t.Run("response", func(t *ctest.T) {
		resp := sendRequest(t, loginRequest(requireContext(t).fixtures))

		m.In(t).Require(resp, HasStatus(200))
		m.In(t).Assert(resp, JSONBody().Should(ValueAt("token").Should(NotEmptyValue())))
	})

	t.Run("schema", schemaTest("post_login_successful.json", loginRequest))
}
