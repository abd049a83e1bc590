// Package session holds the authenticated user identity and access token
// for one run of the client. The Session is constructed once and passed
// explicitly to every component that needs it; there is no package-level
// current-user state.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/AnkushOff/Taskify-Task-Management-System/internal/api"
	"github.com/AnkushOff/Taskify-Task-Management-System/internal/model"
)

// TokenStore persists the access token across client restarts.
// The system keyring implementation lives in internal/credential.
type TokenStore interface {
	Get(key string) (string, error)
	Set(key string, value string) error
	Delete(key string) error
}

// tokenKey is the keyring entry name for the access token.
const tokenKey = "access-token"

// Session tracks the current user and token and keeps the API client's
// auth header in sync.
type Session struct {
	client *api.Client
	tokens TokenStore

	mu    sync.Mutex
	user  *model.User
	token string
}

// New creates an unauthenticated session bound to the given API client.
func New(client *api.Client, tokens TokenStore) *Session {
	return &Session{client: client, tokens: tokens}
}

// Resume tries to restore a previous session from the persisted token.
// Returns false when no usable token is stored; a stale token is
// discarded rather than reported as an error.
func (s *Session) Resume(ctx context.Context) bool {
	token, err := s.tokens.Get(tokenKey)
	if err != nil || token == "" {
		return false
	}

	s.client.SetToken(token)
	user, err := s.client.Me(ctx)
	if err != nil {
		s.client.SetToken("")
		if api.IsAuthError(err) {
			_ = s.tokens.Delete(tokenKey)
		}
		return false
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()
	return true
}

// Login authenticates with email and password.
func (s *Session) Login(ctx context.Context, email, password string) error {
	token, err := s.client.Login(ctx, api.Credentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	s.adopt(token)
	return nil
}

// Register creates a new account and logs it in.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	token, err := s.client.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registering: %w", err)
	}

	s.adopt(token)
	return nil
}

// adopt installs a freshly issued token and persists it.
func (s *Session) adopt(token *api.Token) {
	s.mu.Lock()
	s.user = &token.User
	s.token = token.AccessToken
	s.mu.Unlock()

	s.client.SetToken(token.AccessToken)

	// Persisting the token is best-effort: a keyring failure only means
	// the user logs in again next run.
	_ = s.tokens.Set(tokenKey, token.AccessToken)
}

// Logout discards the token locally and from the keyring. Cached server
// data held elsewhere must be discarded by the caller.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.client.SetToken("")
	_ = s.tokens.Delete(tokenKey)
}

// IsAuthenticated reports whether a user is currently logged in.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

// CurrentUser returns a copy of the logged-in user, or nil.
func (s *Session) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}
