// Package session holds the authentication state of one browser session:
// the current user or none, with login and logout transitions.
package session

import (
	"errors"
	"strings"
	"sync"

	"healthhub/internal/domain/entity"
)

// LoginRoute is where views send a visitor without a current user.
const LoginRoute = "/login"

var (
	ErrUnauthenticated = errors.New("no user is logged in")
	ErrMissingEmail    = errors.New("user email is required")
)

// CredentialStore holds the credential sent to the remote service.
type CredentialStore interface {
	ClearCredentials()
}

// Session is the authentication context shared by every view of one browser
// session. It performs no server verification.
type Session struct {
	mu          sync.RWMutex
	user        *entity.User
	credentials CredentialStore
	onLogout    []func(route string)
}

func New(credentials CredentialStore) *Session {
	return &Session{credentials: credentials}
}

// Login stores the given user as the current user.
func (s *Session) Login(user entity.User) error {
	if strings.TrimSpace(user.Email) == "" {
		return ErrMissingEmail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	return nil
}

// Logout clears the current user and the remote credential, then tells every
// registered listener to navigate to the login route.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	listeners := append([]func(string){}, s.onLogout...)
	s.mu.Unlock()

	if s.credentials != nil {
		s.credentials.ClearCredentials()
	}
	for _, fn := range listeners {
		fn(LoginRoute)
	}
}

// OnLogout registers fn to be called with the route to navigate to.
func (s *Session) OnLogout(fn func(route string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// Current returns a copy of the current user.
func (s *Session) Current() (entity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return entity.User{}, false
	}
	return *s.user, true
}

// RequireUser is the check a view runs once per mount. ErrUnauthenticated
// means the view must redirect to LoginRoute.
func (s *Session) RequireUser() (entity.User, error) {
	user, ok := s.Current()
	if !ok {
		return entity.User{}, ErrUnauthenticated
	}
	return user, nil
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}
