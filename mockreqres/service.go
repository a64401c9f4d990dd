// Package mockreqres is an in-process fake of the reqres API. It serves the same fixture data as
// the real service, so the suite can run offline, and lets tests alter that data to check that
// the suite notices contract violations.
package mockreqres

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/rakachnadzeya/reqres-contract-tests/framework"
	"github.com/rakachnadzeya/reqres-contract-tests/servicedef"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// Service is an http.Handler that implements the API endpoints covered by the suite.
type Service struct {
	data        FixtureData
	overrides   map[string]cannedResponse
	nextID      int
	now         func() time.Time
	handler     http.Handler
	debugLogger framework.Logger
	lock        sync.RWMutex
}

type cannedResponse struct {
	status int
	body   []byte
}

// NewService creates a Service. If debugLogger is nil, nothing is logged.
func NewService(data FixtureData, debugLogger framework.Logger) *Service {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	s := &Service{
		data:        data.copy(),
		overrides:   make(map[string]cannedResponse),
		nextID:      100,
		now:         time.Now,
		debugLogger: debugLogger,
	}

	router := mux.NewRouter()
	router.HandleFunc(servicedef.UsersPath, s.listUsers).Methods("GET")
	router.HandleFunc(servicedef.UsersPath, s.createUser).Methods("POST")
	router.HandleFunc(servicedef.UsersPath+"/{id}", s.getUser).Methods("GET")
	router.HandleFunc(servicedef.UsersPath+"/{id}", s.updateUser).Methods("PUT", "PATCH")
	router.HandleFunc(servicedef.UsersPath+"/{id}", s.deleteUser).Methods("DELETE")
	router.HandleFunc(servicedef.RegisterPath, s.register).Methods("POST")
	router.HandleFunc(servicedef.LoginPath, s.login).Methods("POST")
	router.HandleFunc(servicedef.ResourcesPath, s.listResources).Methods("GET")
	router.HandleFunc(servicedef.ResourcesPath+"/{id}", s.getResource).Methods("GET")
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeRaw(w, http.StatusNotFound, []byte("{}"))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeRaw(w, http.StatusMethodNotAllowed, []byte("{}"))
	})
	s.handler = router

	return s
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.debugLogger.Printf("Fake API received %s %s", r.Method, r.URL)
	s.lock.RLock()
	canned, ok := s.overrides[overrideKey(r.Method, r.URL.Path)]
	s.lock.RUnlock()
	if ok {
		s.writeRaw(w, canned.status, canned.body)
		return
	}
	s.handler.ServeHTTP(w, r)
}

// Fixtures returns a copy of the data currently being served.
func (s *Service) Fixtures() FixtureData {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.data.copy()
}

// SetFixtures replaces the data being served.
func (s *Service) SetFixtures(data FixtureData) {
	s.lock.Lock()
	s.data = data.copy()
	s.lock.Unlock()
}

// SetClock replaces the source of createdAt and updatedAt timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.lock.Lock()
	s.now = now
	s.lock.Unlock()
}

// Override makes every request with this method and path get a fixed response, bypassing the
// normal endpoint logic. The body is sent as-is, so it need not be valid JSON.
func (s *Service) Override(method, path string, status int, body string) {
	s.lock.Lock()
	s.overrides[overrideKey(method, path)] = cannedResponse{status: status, body: []byte(body)}
	s.lock.Unlock()
}

// ClearOverrides removes everything set by Override.
func (s *Service) ClearOverrides() {
	s.lock.Lock()
	s.overrides = make(map[string]cannedResponse)
	s.lock.Unlock()
}

func overrideKey(method, path string) string {
	return method + " " + path
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.debugLogger.Printf("Fake API could not serialize response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.writeRaw(w, status, data)
}

func (s *Service) writeRaw(w http.ResponseWriter, status int, body []byte) {
	s.debugLogger.Printf("Fake API responding %d %s", status, body)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Service) writeError(w http.ResponseWriter, message string) {
	s.writeJSON(w, http.StatusBadRequest, servicedef.ErrorResult{Error: message})
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

func (s *Service) timestamp() string {
	s.lock.RLock()
	now := s.now
	s.lock.RUnlock()
	return now().UTC().Format(timestampFormat)
}
