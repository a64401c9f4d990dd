package reqrestests

import (
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/apiclient"
	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

func doResourcesTests(t *ctest.T) {
	t.Run("list", doResourceListTests)
	t.Run("single", doSingleResourceTests)
}

func listResourcesRequest(Fixtures) apiclient.Request {
	return get(servicedef.ResourcesPath, nil)
}

func doResourceListTests(t *ctest.T) {
	t.Run("response", func(t *ctest.T) {
		resp := sendRequest(t, listResourcesRequest(requireContext(t).fixtures))

		m.In(t).Require(resp, HasStatus(200))
		m.In(t).Assert(resp, JSONBody().Should(m.AllOf(
			ValueAt("data", 0, "id").Should(NotEmptyValue()),
			ValueAt("data", 0, "name").Should(NotEmptyValue()),
		)))
	})

	t.Run("schema", schemaTest("get_list_resources.json", listResourcesRequest))
}

func singleResourceRequest(f Fixtures) apiclient.Request {
	return get(servicedef.ResourcePath(f.ResourceID), nil)
}

func doSingleResourceTests(t *ctest.T) {
	t.Run("response", func(t *ctest.T) {
		resp := sendRequest(t, singleResourceRequest(requireContext(t).fixtures))

		m.In(t).Require(resp, HasStatus(200))
		m.In(t).Assert(resp, JSONBody().Should(m.AllOf(
			ValueAt("data", "id").Should(NotEmptyValue()),
			ValueAt("data", "name").Should(NotEmptyValue()),
		)))
	})

	t.Run("schema", schemaTest("get_single_resource.json", singleResourceRequest))
}
