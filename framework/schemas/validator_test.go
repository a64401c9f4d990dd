package schemas

import (
	"errors"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoadEmbedded(t *testing.T, name string) Document {
	doc, err := NewEmbeddedLoader().Load(name)
	require.NoError(t, err)
	return doc
}

func TestValidateConformingInstance(t *testing.T) {
	doc := mustLoadEmbedded(t, "post_user_register_successful.json")
	instance := ldvalue.ObjectBuild().Set("id", ldvalue.Int(4)).SetString("token", "QpwL5tke4Pnpja7X4").Build()
	assert.NoError(t, NewValidator().Validate(instance, doc))
}

func TestValidateNonConformingInstance(t *testing.T) {
	doc := mustLoadEmbedded(t, "post_user_register_successful.json")
	instance := ldvalue.ObjectBuild().SetString("id", "4").Build()

	err := NewValidator().Validate(instance, doc)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "post_user_register_successful.json", ve.Name)
	assert.Contains(t, ve.Details, "token")
	assert.Contains(t, ve.Details, "/id")
}

func TestValidateEmptyObjectSchema(t *testing.T) {
	doc := mustLoadEmbedded(t, "get_single_user_not_found.json")
	v := NewValidator()
	assert.NoError(t, v.ValidateJSON([]byte(`{}`), doc))
	assert.Error(t, v.ValidateJSON([]byte(`{"data":{}}`), doc))
	assert.Error(t, v.ValidateJSON([]byte(`[]`), doc))
}

func TestValidateJSONRejectsNonJSON(t *testing.T) {
	doc := mustLoadEmbedded(t, "post_login_successful.json")
	err := NewValidator().ValidateJSON([]byte(`<html>`), doc)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Details, "not valid JSON")
}

func TestValidateWithInvalidSchema(t *testing.T) {
	doc := Document{Name: "bad.json", Raw: []byte(`{"type": 5}`)}
	err := NewValidator().Validate(ldvalue.Null(), doc)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "bad.json", pe.Name)
}

func TestValidateUsesRefsInsideDocument(t *testing.T) {
	doc := mustLoadEmbedded(t, "get_list_resources.json")
	good := `{"page":1,"per_page":6,"total":12,"total_pages":2,
		"data":[{"id":1,"name":"cerulean","year":2000,"color":"#98B2D1","pantone_value":"15-4020"}],
		"support":{"url":"u","text":"t"}}`
	bad := `{"page":1,"per_page":6,"total":12,"total_pages":2,
		"data":[{"id":"1","name":"cerulean"}],
		"support":{"url":"u","text":"t"}}`
	v := NewValidator()
	assert.NoError(t, v.ValidateJSON([]byte(good), doc))
	assert.Error(t, v.ValidateJSON([]byte(bad), doc))
}
