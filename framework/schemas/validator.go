package schemas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceBaseURL = "mem://schemas/"

// Validator checks JSON instances against schema documents. Documents that do not declare a
// draft with "$schema" are treated as draft 7.
type Validator struct {
	defaultDraft *jsonschema.Draft
}

// NewValidator creates a Validator.
func NewValidator() *Validator {
	return &Validator{defaultDraft: jsonschema.Draft7}
}

// Validate checks a parsed JSON value. It returns *ValidationError if the value does not conform,
// or *ParseError if the document is not a valid schema.
func (v *Validator) Validate(instance ldvalue.Value, doc Document) error {
	return v.ValidateJSON([]byte(instance.JSONString()), doc)
}

// ValidateJSON is like Validate, but takes the instance as JSON text. Text that is not valid JSON
// is reported as a *ValidationError, since a response body that can't be parsed can't conform.
func (v *Validator) ValidateJSON(instance []byte, doc Document) error {
	schema, err := v.compile(doc)
	if err != nil {
		return err
	}
	parsed, err := unmarshalJSON(bytes.NewReader(instance))
	if err != nil {
		return &ValidationError{Name: doc.Name, Details: fmt.Sprintf("instance is not valid JSON: %s", err), Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return &ValidationError{Name: doc.Name, Details: fmt.Sprintf("%#v", ve), Err: err}
		}
		return &ValidationError{Name: doc.Name, Details: err.Error(), Err: err}
	}
	return nil
}

func (v *Validator) compile(doc Document) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = v.defaultDraft
	resourceURL := resourceBaseURL + url.PathEscape(doc.Name)
	if err := compiler.AddResource(resourceURL, bytes.NewReader(doc.Raw)); err != nil {
		return nil, &ParseError{Name: doc.Name, Err: err}
	}
	schema, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, &ParseError{Name: doc.Name, Err: err}
	}
	return schema, nil
}

// unmarshalJSON decodes an instance the way jsonschema v5 expects (json.Number for numbers) and
// rejects trailing data after the top-level value.
func unmarshalJSON(r io.Reader) (any, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	var doc any
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("invalid character after top-level value")
	}
	return doc, nil
}
