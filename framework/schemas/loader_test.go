package schemas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"good.json":     {Data: []byte(`{"type":"object","required":["token"]}`)},
		"broken.json":   {Data: []byte(`{"type":`)},
		"good.yaml":     {Data: []byte("type: object\nrequired: [error]\n")},
		"badkeys.yml":   {Data: []byte("type: object\n1: x\n")},
		"notes.txt":     {Data: []byte("ignored")},
		"nested/a.json": {Data: []byte(`{}`)},
	}
}

func TestLoadReturnsDocument(t *testing.T) {
	doc, err := NewLoader(testFS()).Load("good.json")
	require.NoError(t, err)
	assert.Equal(t, "good.json", doc.Name)
	assert.Equal(t, `{"type":"object","required":["token"]}`, string(doc.Raw))
	assert.Equal(t, "object", doc.Value.GetByKey("type").StringValue())
	assert.Equal(t, "token", doc.Value.GetByKey("required").GetByIndex(0).StringValue())
}

func TestLoadNotFound(t *testing.T) {
	loader := NewLoader(testFS())
	for _, name := range []string{"missing.json", "../good.json", "/good.json", "", ".", "nested", `nested\a.json`} {
		t.Run(name, func(t *testing.T) {
			_, err := loader.Load(name)
			var nf *NotFoundError
			require.True(t, errors.As(err, &nf), "error was: %v", err)
			assert.Equal(t, name, nf.Name)
			assert.True(t, errors.Is(err, fs.ErrNotExist))
		})
	}
}

func TestLoadParseError(t *testing.T) {
	_, err := NewLoader(testFS()).Load("broken.json")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "broken.json", pe.Name)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadYAML(t *testing.T) {
	doc, err := NewLoader(testFS()).Load("good.yaml")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object","required":["error"]}`, string(doc.Raw))

	_, err = NewLoader(testFS()).Load("badkeys.yml")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), "only string keys are allowed")
}

func TestNames(t *testing.T) {
	names, err := NewLoader(testFS()).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"badkeys.yml", "broken.json", "good.json", "good.yaml"}, names)
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"type":"string"}`), 0600))

	loader, err := NewDirLoader(dir)
	require.NoError(t, err)
	doc, err := loader.Load("a.json")
	require.NoError(t, err)
	assert.Equal(t, "string", doc.Value.GetByKey("type").StringValue())

	_, err = NewDirLoader(filepath.Join(dir, "nope"))
	assert.Error(t, err)
	_, err = NewDirLoader(filepath.Join(dir, "a.json"))
	assert.Error(t, err)
}

func TestEmbeddedSchemasAreAllValid(t *testing.T) {
	loader := NewEmbeddedLoader()
	names, err := loader.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"get_list_resources.json",
		"get_page_number.json",
		"get_single_resource.json",
		"get_single_user_not_found.json",
		"get_user_list.json",
		"post_create_user.json",
		"post_login_successful.json",
		"post_user_register_successful.json",
		"post_user_register_unsuccessful.json",
		"put_update_user_schema.json",
	}, names)

	validator := NewValidator()
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			doc, err := loader.Load(name)
			require.NoError(t, err)
			_, err = validator.compile(doc)
			assert.NoError(t, err)
		})
	}
}
