package schemas

import (
	"fmt"
)

// NotFoundError means there is no schema file with the requested name. It matches
// fs.ErrNotExist with errors.Is.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schema %q not found: %s", e.Name, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError means a schema file exists but is not a usable schema document.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("schema %q could not be parsed: %s", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError means an instance does not conform to a schema. Details is the validator's
// full report, listing every failing keyword with its instance and schema location.
type ValidationError struct {
	Name    string
	Details string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("response does not match schema %q: %s", e.Name, e.Details)
}

func (e *ValidationError) Unwrap() error { return e.Err }
