package mockreqres

import (
	"fmt"
	"strings"

	"github.com/rakachnadzeya/reqres-contract-tests/framework/helpers"
	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

// DefaultToken is the token the real API returns for successful registration and login.
const DefaultToken = "QpwL5tke4Pnpja7X4"

// FixtureData is everything the fake API serves. Changing it (see Service.SetFixtures) is how a
// test simulates an API that no longer matches the contract.
type FixtureData struct {
	Users     []servicedef.User
	Resources []servicedef.Resource
	Support   servicedef.Support

	// PerPage is the default page size of list endpoints.
	PerPage int

	// RegisterToken and LoginToken are returned by successful register and login requests. Only
	// the email addresses of Users can register or log in.
	RegisterToken string
	LoginToken    string
}

var firstNames = []string{ //nolint:gochecknoglobals
	"George", "Janet", "Emma", "Eve", "Charles", "Tracey",
	"Michael", "Lindsay", "Tobias", "Byron", "George", "Rachel",
}

var lastNames = []string{ //nolint:gochecknoglobals
	"Bluth", "Weaver", "Wong", "Holt", "Morris", "Ramos",
	"Lawson", "Ferguson", "Funke", "Fields", "Edwards", "Howell",
}

var resourceData = []struct { //nolint:gochecknoglobals
	name, color, pantone string
}{
	{"cerulean", "#98B2D1", "15-4020"},
	{"fuchsia rose", "#C74375", "17-2031"},
	{"true red", "#BF1932", "19-1664"},
	{"aqua sky", "#7BC4C4", "14-4811"},
	{"tigerlily", "#E2583E", "17-1456"},
	{"blue turquoise", "#53B0AE", "15-5217"},
	{"sand dollar", "#DECDBE", "13-1106"},
	{"chili pepper", "#9B1B30", "19-1557"},
	{"blue iris", "#5A5B9F", "18-3943"},
	{"mimosa", "#F0C05A", "14-0848"},
	{"turquoise", "#45B5AA", "15-5519"},
	{"honeysuckle", "#D94F70", "18-2120"},
}

// DefaultFixtureData returns the data the real API is known to serve.
func DefaultFixtureData() FixtureData {
	users := make([]servicedef.User, 0, len(firstNames))
	for i := range firstNames {
		id := i + 1
		users = append(users, servicedef.User{
			ID:        id,
			Email:     fmt.Sprintf("%s.%s@reqres.in", strings.ToLower(firstNames[i]), strings.ToLower(lastNames[i])),
			FirstName: firstNames[i],
			LastName:  lastNames[i],
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		})
	}
	resources := make([]servicedef.Resource, 0, len(resourceData))
	for i, r := range resourceData {
		resources = append(resources, servicedef.Resource{
			ID: i + 1, Name: r.name, Year: 2000 + i, Color: r.color, PantoneValue: r.pantone,
		})
	}
	return FixtureData{
		Users:     users,
		Resources: resources,
		Support: servicedef.Support{
			URL:  "https://reqres.in/#support-heading",
			Text: "To keep ReqRes free, contributions towards server costs are appreciated!",
		},
		PerPage:       6,
		RegisterToken: DefaultToken,
		LoginToken:    DefaultToken,
	}
}

func (f FixtureData) copy() FixtureData {
	f.Users = helpers.CopyOf(f.Users)
	f.Resources = helpers.CopyOf(f.Resources)
	return f
}

func (f FixtureData) userByEmail(email string) (servicedef.User, bool) {
	for _, u := range f.Users {
		if u.Email == email {
			return u, true
		}
	}
	return servicedef.User{}, false
}
