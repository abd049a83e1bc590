package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

// memStore is an in-memory TokenStore for tests.
type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", errors.New("not found")
	}
	return value, nil
}

func (s *memStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}

func TestLoginPersistsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %q, want /api/auth/login", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.Token{
			AccessToken: "tok-abc",
			TokenType:   "bearer",
			User:        model.User{ID: "u1", Name: "Ada", Email: "ada@example.com"},
		})
	}))
	defer server.Close()

	tokens := newMemStore()
	sess := New(api.NewClient(server.URL, 0), tokens)

	if err := sess.Login(context.Background(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if !sess.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after login")
	}
	if user := sess.CurrentUser(); user == nil || user.Name != "Ada" {
		t.Errorf("CurrentUser() = %v, want Ada", user)
	}
	if got := tokens.values["access-token"]; got != "tok-abc" {
		t.Errorf("persisted token = %q, want tok-abc", got)
	}
}

func TestLoginFailureStaysUnauthenticated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid credentials"})
	}))
	defer server.Close()

	sess := New(api.NewClient(server.URL, 0), newMemStore())

	err := sess.Login(context.Background(), "ada@example.com", "wrong")
	if err == nil {
		t.Fatal("Login() error = nil, want auth failure")
	}
	if !api.IsAuthError(err) {
		t.Errorf("error %v is not an AuthError", err)
	}
	if sess.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after failed login")
	}
}

func TestResumeWithValidToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-old" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(model.User{ID: "u1", Name: "Ada"})
	}))
	defer server.Close()

	tokens := newMemStore()
	tokens.values["access-token"] = "tok-old"
	sess := New(api.NewClient(server.URL, 0), tokens)

	if !sess.Resume(context.Background()) {
		t.Fatal("Resume() = false, want true")
	}
	if user := sess.CurrentUser(); user == nil || user.Name != "Ada" {
		t.Errorf("CurrentUser() = %v, want Ada", user)
	}
}

func TestResumeDiscardsStaleToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Token expired"})
	}))
	defer server.Close()

	tokens := newMemStore()
	tokens.values["access-token"] = "tok-stale"
	sess := New(api.NewClient(server.URL, 0), tokens)

	if sess.Resume(context.Background()) {
		t.Fatal("Resume() = true with stale token, want false")
	}
	if _, ok := tokens.values["access-token"]; ok {
		t.Error("stale token still persisted, want deleted")
	}
}

func TestResumeWithoutToken(t *testing.T) {
	sess := New(api.NewClient("http://127.0.0.1:0", 0), newMemStore())
	if sess.Resume(context.Background()) {
		t.Error("Resume() = true with no stored token, want false")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(api.Token{
			AccessToken: "tok-abc",
			User:        model.User{ID: "u1"},
		})
	}))
	defer server.Close()

	tokens := newMemStore()
	sess := New(api.NewClient(server.URL, 0), tokens)
	if err := sess.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	sess.Logout()

	if sess.IsAuthenticated() {
		t.Error("IsAuthenticated() = true after logout")
	}
	if sess.CurrentUser() != nil {
		t.Error("CurrentUser() != nil after logout")
	}
	if _, ok := tokens.values["access-token"]; ok {
		t.Error("token still persisted after logout")
	}
}
