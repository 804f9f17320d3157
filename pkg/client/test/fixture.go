// Package test provides an in-memory DBM backend for tests of the client,
// the provider and dbmctl.
package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"terraform-provider-dbm/pkg/client/env"
	"terraform-provider-dbm/pkg/client/session"
)

const (
	AppCode   = "bk_dbm"
	AppSecret = "fixture-secret"
	Username  = "admin"
)

type Request struct {
	Method string
	Path   string
	Query  url.Values
	Auth   string
}

type route struct {
	status int
	body   []byte
}

// Server answers registered paths with canned bodies and records every
// request it receives. Unregistered paths get a 404.
type Server struct {
	*httptest.Server
	BizID int64

	mu       sync.Mutex
	routes   map[string]route
	requests []Request
}

func NewServer(bizID int64) *Server {
	s := &Server{
		BizID:  bizID,
		routes: map[string]route{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// NewDefaultServer returns a server preloaded with the fixture dataset.
func NewDefaultServer(bizID int64) *Server {
	s := NewServer(bizID)
	s.LoadDefaults()
	return s
}

// Respond registers data wrapped in a successful DBM envelope.
func (s *Server) Respond(path, data string) {
	body := fmt.Sprintf(`{"code": 0, "message": "", "result": true, "data": %s}`, data)
	s.RespondRaw(path, http.StatusOK, body)
}

// Fail registers a DBM envelope with result=false.
func (s *Server) Fail(path string, code int, message string) {
	msg, _ := json.Marshal(message)
	body := fmt.Sprintf(`{"code": %d, "message": %s, "result": false, "data": null}`, code, msg)
	s.RespondRaw(path, http.StatusOK, body)
}

func (s *Server) RespondRaw(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = route{status: status, body: []byte(body)}
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// BizPath renders a biz scoped path the same way session.BizURI does.
func (s *Server) BizPath(module, resource string, parts ...string) string {
	return (&session.Session{BizID: s.BizID}).BizURI(module, resource, parts...)
}

func (s *Server) Config() *env.Config {
	return &env.Config{
		APIURL:    s.URL,
		AppCode:   AppCode,
		AppSecret: AppSecret,
		Username:  Username,
		BizID:     s.BizID,
		TimeZone:  "UTC",
		Timeout:   5 * time.Second,
	}
}

func (s *Server) Session() *session.Session {
	sess, err := session.New(s.Config())
	if err != nil {
		panic(err)
	}
	return sess
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Auth:   r.Header.Get("X-Bkapi-Authorization"),
	})
	rt, ok := s.routes[r.URL.Path]
	s.mu.Unlock()

	w.Header().Set("X-Request-Id", r.Header.Get("X-Request-Id"))
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"detail": "%s not found"}`, r.URL.Path)
		return
	}
	w.WriteHeader(rt.status)
	w.Write(rt.body)
}
