package mockreqres

import (
	"net/http"

	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

// readCredentials parses a register or login body. It writes the error response itself and
// returns false if the request can't proceed.
func (s *Service) readCredentials(w http.ResponseWriter, r *http.Request) (servicedef.CredentialsParams, bool) {
	body, err := readObject(r)
	if err != nil {
		s.writeError(w, servicedef.ErrorMalformedRequestBody)
		return servicedef.CredentialsParams{}, false
	}
	creds := servicedef.CredentialsParams{
		Email:    body.GetByKey("email").StringValue(),
		Username: body.GetByKey("username").StringValue(),
		Password: body.GetByKey("password").StringValue(),
	}
	switch {
	case creds.Email == "" && creds.Username == "":
		s.writeError(w, servicedef.ErrorMissingEmail)
		return creds, false
	case creds.Password == "":
		s.writeError(w, servicedef.ErrorMissingPassword)
		return creds, false
	}
	return creds, true
}

func (s *Service) register(w http.ResponseWriter, r *http.Request) {
	creds, ok := s.readCredentials(w, r)
	if !ok {
		return
	}
	data := s.Fixtures()
	user, found := data.userByEmail(creds.Email)
	if !found {
		s.writeError(w, servicedef.ErrorUndefinedUser)
		return
	}
	s.writeJSON(w, http.StatusOK, servicedef.RegisterResult{ID: user.ID, Token: data.RegisterToken})
}

func (s *Service) login(w http.ResponseWriter, r *http.Request) {
	creds, ok := s.readCredentials(w, r)
	if !ok {
		return
	}
	data := s.Fixtures()
	if _, found := data.userByEmail(creds.Email); !found {
		s.writeError(w, servicedef.ErrorUserNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, servicedef.LoginResult{Token: data.LoginToken})
}
