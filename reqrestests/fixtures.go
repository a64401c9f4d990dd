package reqrestests

import (
	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

// Fixtures is the request data and the expected values that the tests depend on. Most of it is
// data the API is known to hold; RegisterToken in particular is a value the suite cannot
// control, so it can be changed from the command line if the API's data changes.
type Fixtures struct {
	RequestedPage     int
	DefaultPageLength int
	UnknownUserID     int
	NewUser           servicedef.UserParams
	UpdatedUserID     int
	UpdatedUser       servicedef.UserParams
	RegisteredUser    servicedef.CredentialsParams
	RegisterToken     string
	UnregisteredUser  servicedef.CredentialsParams
	LoginUser         servicedef.CredentialsParams
	ResourceID        int
}

// DefaultRegisterToken is the token the API has been observed to return for RegisteredUser.
const DefaultRegisterToken = "QpwL5tke4Pnpja7X4"

// DefaultFixtures returns the standard test data.
func DefaultFixtures() Fixtures {
	return Fixtures{
		RequestedPage:     2,
		DefaultPageLength: 6,
		UnknownUserID:     23,
		NewUser:           servicedef.UserParams{Name: "jane", Job: "job"},
		UpdatedUserID:     23,
		UpdatedUser:       servicedef.UserParams{Name: "Kate", Job: "leader"},
		RegisteredUser:    servicedef.CredentialsParams{Email: "eve.holt@reqres.in", Password: "pistol"},
		RegisterToken:     DefaultRegisterToken,
		UnregisteredUser:  servicedef.CredentialsParams{Email: "sydney@fife"},
		LoginUser:         servicedef.CredentialsParams{Email: "eve.holt@reqres.in", Password: "pistol"},
		ResourceID:        2,
	}
}
