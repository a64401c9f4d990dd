package servicedef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserParamsAsValue(t *testing.T) {
	assert.JSONEq(t, `{"name":"jane","job":"job"}`, UserParams{Name: "jane", Job: "job"}.AsValue().JSONString())
}

func TestCredentialsParamsOmitEmptyFields(t *testing.T) {
	assert.JSONEq(t, `{"email":"sydney@fife"}`, CredentialsParams{Email: "sydney@fife"}.AsValue().JSONString())
	assert.JSONEq(t, `{"email":"eve.holt@reqres.in","password":"pistol"}`,
		CredentialsParams{Email: "eve.holt@reqres.in", Password: "pistol"}.AsValue().JSONString())
	assert.JSONEq(t, `{}`, CredentialsParams{}.AsValue().JSONString())
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/api/users/23", UserPath(23))
	assert.Equal(t, "/api/unknown/2", ResourcePath(2))
}
