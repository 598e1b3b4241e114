// Package apitest runs a fake backend for service tests.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"pot-portal/core/api"
	"pot-portal/core/middleware"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Request is a recorded call to the fake backend.
type Request struct {
	Method string
	// Path is relative to the API root, e.g. "Player/Leaderboard".
	Path   string
	Query  string
	Body   string
	Header http.Header
}

// Route answers one method and path.
type Route struct {
	Status int
	Body   string
	// ContentType defaults to application/json.
	ContentType string
}

// Server is a fake backend that records every request.
type Server struct {
	mu       sync.Mutex
	routes   map[string]Route
	requests []Request
	srv      *httptest.Server
}

// NewServer starts a server closed on test cleanup.
func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{routes: make(map[string]Route)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

// Handle registers a response for method and path (without query).
func (s *Server) Handle(method, path string, route Route) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[method+" "+path] = route
	return s
}

// JSON is shorthand for a 200 JSON route.
func (s *Server) JSON(method, path, body string) *Server {
	return s.Handle(method, path, Route{Status: http.StatusOK, Body: body})
}

// Client returns an API client pointed at the server.
func (s *Server) Client(t *testing.T, interceptors ...middleware.Interceptor) *api.Client {
	t.Helper()
	c, err := api.NewClient(api.Config{BaseURL: s.srv.URL + "/api/"}, zap.NewNop(), interceptors...)
	require.NoError(t, err)
	return c
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request, or the zero Request.
func (s *Server) Last() Request {
	reqs := s.Requests()
	if len(reqs) == 0 {
		return Request{}
	}
	return reqs[len(reqs)-1]
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")
	path = strings.TrimPrefix(path, "/")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
		Header: r.Header.Clone(),
	})
	route, ok := s.routes[r.Method+" "+path]
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no route"}`))
		return
	}

	contentType := route.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	status := route.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(route.Body))
}
