package servicedef

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Error messages returned by the register and login endpoints.
const (
	ErrorMissingPassword      = "Missing password"
	ErrorMissingEmail         = "Missing email or username"
	ErrorUndefinedUser        = "Note: Only defined users succeed registration"
	ErrorUserNotFound         = "user not found"
	ErrorMalformedRequestBody = "Malformed request body"
)

// UserParams is the body of a create or update user request.
type UserParams struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// AsValue returns the request body.
func (p UserParams) AsValue() ldvalue.Value {
	return ldvalue.ObjectBuild().SetString("name", p.Name).SetString("job", p.Job).Build()
}

// CredentialsParams is the body of a register or login request. Empty fields are left out, so
// that a request with a missing password can be expressed.
type CredentialsParams struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// AsValue returns the request body.
func (p CredentialsParams) AsValue() ldvalue.Value {
	b := ldvalue.ObjectBuild()
	if p.Email != "" {
		b.SetString("email", p.Email)
	}
	if p.Username != "" {
		b.SetString("username", p.Username)
	}
	if p.Password != "" {
		b.SetString("password", p.Password)
	}
	return b.Build()
}

// User is an entry of the user list.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Resource is an entry of the resource list.
type Resource struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
	PantoneValue string `json:"pantone_value"`
}

// Support is the advertisement block included in list and single-item responses.
type Support struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// ListPage is the response to a paged list request.
type ListPage[T any] struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Data       []T     `json:"data"`
	Support    Support `json:"support"`
}

// SingleItem is the response to a request for one user or resource.
type SingleItem[T any] struct {
	Data    T       `json:"data"`
	Support Support `json:"support"`
}

// CreatedUser is the response to a create user request.
type CreatedUser struct {
	UserParams
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
}

// UpdatedUser is the response to an update user request.
type UpdatedUser struct {
	UserParams
	UpdatedAt string `json:"updatedAt"`
}

// RegisterResult is the response to a successful register request.
type RegisterResult struct {
	ID    int    `json:"id"`
	Token string `json:"token"`
}

// LoginResult is the response to a successful login request.
type LoginResult struct {
	Token string `json:"token"`
}

// ErrorResult is the response to a failed register or login request.
type ErrorResult struct {
	Error string `json:"error"`
}
