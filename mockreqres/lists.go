package mockreqres

import (
	"net/http"
	"strconv"

	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

// paginate selects one page of items. Page numbers below 1, or that aren't numbers, mean page 1;
// a page past the end is empty rather than an error.
func paginate[T any](r *http.Request, items []T, defaultPerPage int, support servicedef.Support) servicedef.ListPage[T] {
	page := positiveIntParam(r, servicedef.PageParam, 1)
	perPage := positiveIntParam(r, servicedef.PerPageParam, defaultPerPage)
	total := len(items)
	result := servicedef.ListPage[T]{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
		Data:       make([]T, 0, perPage),
		Support:    support,
	}
	start := (page - 1) * perPage
	for i := start; i < total && i < start+perPage; i++ {
		result.Data = append(result.Data, items[i])
	}
	return result
}

func positiveIntParam(r *http.Request, name string, defaultValue int) int {
	if n, err := strconv.Atoi(r.URL.Query().Get(name)); err == nil && n > 0 {
		return n
	}
	if defaultValue < 1 {
		return 1
	}
	return defaultValue
}

func (s *Service) listUsers(w http.ResponseWriter, r *http.Request) {
	data := s.Fixtures()
	s.writeJSON(w, http.StatusOK, paginate(r, data.Users, data.PerPage, data.Support))
}

func (s *Service) getUser(w http.ResponseWriter, r *http.Request) {
	data := s.Fixtures()
	if id, ok := pathID(r); ok {
		for _, u := range data.Users {
			if u.ID == id {
				s.writeJSON(w, http.StatusOK, servicedef.SingleItem[servicedef.User]{Data: u, Support: data.Support})
				return
			}
		}
	}
	s.writeRaw(w, http.StatusNotFound, []byte("{}"))
}

func (s *Service) listResources(w http.ResponseWriter, r *http.Request) {
	data := s.Fixtures()
	s.writeJSON(w, http.StatusOK, paginate(r, data.Resources, data.PerPage, data.Support))
}

func (s *Service) getResource(w http.ResponseWriter, r *http.Request) {
	data := s.Fixtures()
	if id, ok := pathID(r); ok {
		for _, res := range data.Resources {
			if res.ID == id {
				s.writeJSON(w, http.StatusOK, servicedef.SingleItem[servicedef.Resource]{Data: res, Support: data.Support})
				return
			}
		}
	}
	s.writeRaw(w, http.StatusNotFound, []byte("{}"))
}
