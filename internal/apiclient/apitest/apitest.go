// Package apitest runs a fake CHARGILI API for tests.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"chargili/internal/apiclient"
)

// Call is one request received by the fake API.
type Call struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

// Decode unmarshals the request body into v.
func (c Call) Decode(t *testing.T, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(c.Body, v); err != nil {
		t.Fatalf("decode %s %s body: %v", c.Method, c.Path, err)
	}
}

type Server struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []Call
}

// New starts a fake API closed with the test. Unknown routes answer 404.
func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{routes: map[string]http.HandlerFunc{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Body:   body,
	})
	fn, ok := s.routes[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		Reply(w, http.StatusNotFound, map[string]string{"message": "route inconnue"})
		return
	}
	fn(w, r)
}

// Handle registers fn for method and path.
func (s *Server) Handle(method, path string, fn http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = fn
}

// JSON answers method and path with a fixed status and JSON body.
func (s *Server) JSON(method, path string, status int, body interface{}) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		Reply(w, status, body)
	})
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Last returns the latest call to method and path.
func (s *Server) Last(method, path string) (Call, bool) {
	calls := s.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == method && calls[i].Path == path {
			return calls[i], true
		}
	}
	return Call{}, false
}

// Count returns how many times method and path were called.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// Client returns an API client pointed at the fake.
func (s *Server) Client(token apiclient.TokenSource) *apiclient.Client {
	return apiclient.New(apiclient.Options{BaseURL: s.URL, Token: token})
}

func Reply(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
