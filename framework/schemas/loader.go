// Package schemas loads JSON Schema documents by name and validates API responses against them.
package schemas

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed files
var embeddedFiles embed.FS

const embeddedBasePath = "files"

// Loader reads schema documents from one directory. Documents are read from the file system on
// every call and are not cached.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader over an arbitrary file system; schema names are paths within it.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewEmbeddedLoader creates a Loader for the schemas compiled into the program.
func NewEmbeddedLoader() *Loader {
	sub, err := fs.Sub(embeddedFiles, embeddedBasePath)
	if err != nil {
		panic(err) // only possible if the embed directive is broken
	}
	return NewLoader(sub)
}

// NewDirLoader creates a Loader for a directory on disk.
func NewDirLoader(dir string) (*Loader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("schema directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("schema directory: %q is not a directory", dir)
	}
	return NewLoader(os.DirFS(dir)), nil
}

// Load reads and parses the named schema file. It returns *NotFoundError if there is no such file
// and *ParseError if the content is not valid JSON (or YAML, for .yaml and .yml files).
func (l *Loader) Load(name string) (Document, error) {
	if !fs.ValidPath(name) || name == "." || strings.Contains(name, `\`) {
		return Document{}, &NotFoundError{Name: name, Err: fs.ErrNotExist}
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && isDirectory(l.fsys, name) {
			err = fmt.Errorf("%w: %q is a directory", fs.ErrNotExist, name)
		}
		return Document{}, &NotFoundError{Name: name, Err: err}
	}
	return parseDocument(name, data)
}

// Names returns the names of all schema files in the top level of the directory, sorted.
func (l *Loader) Names() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, err
	}
	var ret []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
			ret = append(ret, e.Name())
		}
	}
	return ret, nil
}

func isDirectory(fsys fs.FS, name string) bool {
	info, err := fs.Stat(fsys, name)
	return err == nil && info.IsDir()
}
