package servicedef

import "strconv"

const (
	UsersPath     = "/api/users"
	RegisterPath  = "/api/register"
	LoginPath     = "/api/login"
	ResourcesPath = "/api/unknown"

	// PageParam is the query parameter that selects a page of a list.
	PageParam = "page"
	// PerPageParam is the query parameter that changes the page size.
	PerPageParam = "per_page"
)

// UserPath returns the path of a single user.
func UserPath(id int) string {
	return UsersPath + "/" + strconv.Itoa(id)
}

// ResourcePath returns the path of a single resource.
func ResourcePath(id int) string {
	return ResourcesPath + "/" + strconv.Itoa(id)
}
