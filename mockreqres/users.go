package mockreqres

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

var errNotAnObject = errors.New("request body is not a JSON object")

// readObject parses the request body as a JSON object. An empty body is an empty object.
func readObject(r *http.Request) (ldvalue.Value, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return ldvalue.Null(), err
	}
	if len(data) == 0 {
		return ldvalue.ObjectBuild().Build(), nil
	}
	var value ldvalue.Value
	if err := json.Unmarshal(data, &value); err != nil {
		return ldvalue.Null(), err
	}
	if value.Type() != ldvalue.ObjectType {
		return ldvalue.Null(), errNotAnObject
	}
	return value, nil
}

func userParams(body ldvalue.Value) servicedef.UserParams {
	return servicedef.UserParams{
		Name: body.GetByKey("name").StringValue(),
		Job:  body.GetByKey("job").StringValue(),
	}
}

func (s *Service) createUser(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		s.writeError(w, servicedef.ErrorMalformedRequestBody)
		return
	}
	s.lock.Lock()
	s.nextID++
	id := s.nextID
	s.lock.Unlock()
	s.writeJSON(w, http.StatusCreated, servicedef.CreatedUser{
		UserParams: userParams(body),
		ID:         strconv.Itoa(id),
		CreatedAt:  s.timestamp(),
	})
}

func (s *Service) updateUser(w http.ResponseWriter, r *http.Request) {
	body, err := readObject(r)
	if err != nil {
		s.writeError(w, servicedef.ErrorMalformedRequestBody)
		return
	}
	s.writeJSON(w, http.StatusOK, servicedef.UpdatedUser{UserParams: userParams(body), UpdatedAt: s.timestamp()})
}

func (s *Service) deleteUser(w http.ResponseWriter, r *http.Request) {
	s.debugLogger.Printf("Fake API responding 204")
	w.WriteHeader(http.StatusNoContent)
}
