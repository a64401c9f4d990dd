package reqrestests

import (
	"strconv"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

func doUsersTests(t *ctest.T) {
	t.Run("list", doUsersListTests)
	t.Run("single user not found", doUserNotFoundTests)
	t.Run("create", doCreateUserTests)
	t.Run("update", doUpdateUserTests)
}

func listUsersRequest(Fixtures) apiclient.Request {
	return get(servicedef.UsersPath, nil)
}

func doUsersListTests(t *ctest.T) {
	t.Run("requested page number", func(t *ctest.T) {
		page := requireContext(t).fixtures.RequestedPage
		resp := sendRequest(t, get(servicedef.UsersPath, map[string]string{servicedef.PageParam: strconv.Itoa(page)}))

		m.In(t).Require(resp, HasStatus(200))
		m.In(t).Assert(resp, JSONBody().Should(ValueAt("page").Should(EqualValue(page))))
	})

	t.Run("requested page number schema", schemaTest("get_page_number.json", listUsersRequest))

	t.Run("default length", func(t *ctest.T) {
		resp := sendRequest(t, listUsersRequest(requireContext(t).fixtures))

		m.In(t).Assert(resp, JSONBody().Should(ValueAt("data").Should(
			ArrayLength().Should(m.Equal(requireContext(t).fixtures.DefaultPageLength)))))
	})

	t.Run("schema", schemaTest("get_user_list.json", listUsersRequest))
}

func unknownUserRequest(f Fixtures) apiclient.Request {
	return get(servicedef.UserPath(f.UnknownUserID), nil)
}

func doUserNotFoundTests(t *ctest.T) {
	t.Run("response", func(t *ctest.T) {
		resp := sendRequest(t, unknownUserRequest(requireContext(t).fixtures))

		m.In(t).Assert(resp, HasStatus(404))
		m.In(t).Assert(resp, BodyText().Should(m.Equal("{}")))
	})

	t.Run("schema", schemaTest("get_single_user_not_found.json", unknownUserRequest))
}

func createUserRequest(f Fixtures) apiclient.Request {
	return post(servicedef.UsersPath, f.NewUser.AsValue())
}

func doCreateUserTests(t *ctest.T) {
	t.Run("response", func(t *ctest.T) {
		fixtures := requireContext(t).fixtures
		resp := sendRequest(t, createUserRequest(fixtures))

		m.In(t).Require(resp, HasStatus(201))
		m.In(t).Assert(resp, JSONBody().Should(ValueAt("name").Should(EqualValue(fixtures.NewUser.Name))))
	})

	t.Run("schema", schemaTest("post_create_user.json", createUserRequest))
}

func updateUserRequest(f Fixtures) apiclient.Request {
	return put(servicedef.UserPath(f.UpdatedUserID), f.UpdatedUser.AsValue())
}

func doUpdateUserTests(t *ctest.T) {
	t.Run("response", func(t *ctest.T) {
		fixtures := requireContext(t).fixtures
		resp := sendRequest(t, updateUserRequest(fixtures))

		m.In(t).Require(resp, HasStatus(200))
		m.In(t).Assert(resp, JSONBody().Should(m.AllOf(
			ValueAt("name").Should(EqualValue(fixtures.UpdatedUser.Name)),
			ValueAt("job").Should(EqualValue(fixtures.UpdatedUser.Job)),
		)))
	})

	t.Run("schema", schemaTest("put_update_user_schema.json", updateUserRequest))
}
