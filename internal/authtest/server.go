// Package authtest runs an in-memory authentication server for tests.
//
// HTTP API
//
//	GET /session
//	    200 with the username as plain text for a valid session cookie,
//	    401 otherwise.
//
//	POST /session, POST /login { "username": "...", "password": "..." }
//	    204 and a session cookie on success, 401 "Invalid password" for a
//	    wrong password, 404 "User not found" for an unknown user.
//
//	DELETE /session
//	    204 and an expired session cookie.
//
//	GET /whoami
//	    Same as GET /session.
//
// Every route counts its hits, and responses can be forced per route to
// exercise failure paths.
package authtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

const (
	cookieName  = "session"
	usernameKey = "username"
)

// Route names accepted by Hits and Force.
const (
	RouteSessionInfo = "GET /session"
	RouteLogin       = "POST /session"
	RouteLoginAlias  = "POST /login"
	RouteLogout      = "DELETE /session"
	RouteWhoAmI      = "GET /whoami"
)

// Server is a fake authentication server.
type Server struct {
	*httptest.Server

	cookies *sessions.CookieStore

	mu     sync.Mutex
	users  map[string][]byte
	hits   map[string]int
	forced map[string]int
}

// NewServer starts a server and registers its shutdown with t.Cleanup.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		cookies: sessions.NewCookieStore([]byte("authtest-hash-key-0123456789abcdef")),
		users:   make(map[string][]byte),
		hits:    make(map[string]int),
		forced:  make(map[string]int),
	}
	s.cookies.Options = &sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}

	r := mux.NewRouter()
	r.HandleFunc("/session", s.counted(RouteSessionInfo, s.sessionInfo)).Methods(http.MethodGet)
	r.HandleFunc("/session", s.counted(RouteLogin, s.login)).Methods(http.MethodPost)
	r.HandleFunc("/login", s.counted(RouteLoginAlias, s.login)).Methods(http.MethodPost)
	r.HandleFunc("/session", s.counted(RouteLogout, s.logout)).Methods(http.MethodDelete)
	r.HandleFunc("/whoami", s.counted(RouteWhoAmI, s.sessionInfo)).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// AddUser registers username with password.
func (s *Server) AddUser(t testing.TB, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	s.mu.Lock()
	s.users[username] = hash
	s.mu.Unlock()
}

// Force makes route answer with code and an empty body until Unforce.
func (s *Server) Force(route string, code int) {
	s.mu.Lock()
	s.forced[route] = code
	s.mu.Unlock()
}

// Unforce restores the normal behaviour of route.
func (s *Server) Unforce(route string) {
	s.mu.Lock()
	delete(s.forced, route)
	s.mu.Unlock()
}

// Hits returns how many requests route has received.
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

func (s *Server) counted(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[route]++
		code, forced := s.forced[route]
		s.mu.Unlock()

		if forced {
			w.WriteHeader(code)
			return
		}
		h(w, r)
	}
}

func (s *Server) sessionInfo(w http.ResponseWriter, r *http.Request) {
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		http.Error(w, "invalid session", http.StatusUnauthorized)
		return
	}
	username, ok := sess.Values[usernameKey].(string)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(username))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	hash, ok := s.users[req.Username]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	sess, _ := s.cookies.New(r, cookieName)
	sess.Values[usernameKey] = req.Username
	if err := sess.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := s.cookies.Get(r, cookieName)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
