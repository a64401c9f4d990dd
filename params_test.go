package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/ctest"
)

func TestReadDefaults(t *testing.T) {
	var c commandParams
	require.True(t, c.Read([]string{"prog"}))
	assert.Equal(t, defaultBaseURL, c.baseURL)
	assert.Equal(t, 10*time.Second, c.timeout)
	assert.False(t, c.mock)
	assert.False(t, c.filters.MustMatch.IsDefined())
}

func TestReadFlags(t *testing.T) {
	var c commandParams
	require.True(t, c.Read([]string{"prog",
		"-url", "http://localhost:9000",
		"-header", "X-Api-Key: reqres-free-v1",
		"-header", "Accept: application/json",
		"-timeout", "3s",
		"-run", "users",
		"-skip", "users/create",
		"-register-token", "abc",
		"-mock",
	}))
	assert.Equal(t, "http://localhost:9000", c.baseURL)
	assert.Equal(t, headerList{"X-Api-Key: reqres-free-v1", "Accept: application/json"}, c.headers)
	assert.Equal(t, 3*time.Second, c.timeout)
	assert.True(t, c.filters.Match(ctest.TestID{"users", "list"}))
	assert.False(t, c.filters.Match(ctest.TestID{"users", "create", "schema"}))
	assert.False(t, c.filters.Match(ctest.TestID{"login"}))
	assert.Equal(t, "abc", c.registerToken)
	assert.True(t, c.mock)
}

func TestReadRejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"prog", "-header", "no colon"},
		{"prog", "-timeout", "0s"},
		{"prog", "-run", "("},
		{"prog", "extra"},
	} {
		var c commandParams
		assert.False(t, c.Read(args), "%v", args)
	}
}

func TestParseSkipFile(t *testing.T) {
	ids, err := parseSkipFile([]byte("users/list/schema\n\n# flaky\nregister/successful/token\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"users/list/schema", "register/successful/token"}, ids)

	ids, err = parseSkipFile([]byte("- users/list/schema\n- resources/single/schema\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"users/list/schema", "resources/single/schema"}, ids)
}

func TestLoadSkipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skip.txt")
	require.NoError(t, os.WriteFile(path, []byte("users/list/requested page number\n"), 0o600))

	c := commandParams{skipFile: path}
	require.NoError(t, c.loadSkipFile())
	assert.False(t, c.filters.Match(ctest.TestID{"users", "list", "requested page number"}))
	assert.True(t, c.filters.Match(ctest.TestID{"users", "list", "requested page number schema"}))

	c = commandParams{skipFile: filepath.Join(t.TempDir(), "missing")}
	assert.Error(t, c.loadSkipFile())
}

func TestRerunCommand(t *testing.T) {
	c := commandParams{baseURL: "https://reqres.in"}
	cmd := c.rerunCommand("./reqres-contract-tests", []ctest.TestID{{"users", "single user not found", "schema"}})
	assert.Equal(t,
		`./reqres-contract-tests -url https://reqres.in -run '^users$/^single user not found$/^schema$'`, cmd)

	c = commandParams{mock: true}
	cmd = c.rerunCommand("prog", []ctest.TestID{{"login"}})
	assert.Equal(t, `prog -mock -run '^login$'`, cmd)
}
