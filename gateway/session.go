package gateway

import (
	"sync"

	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

// Session holds the credentials for talking to the remote MPMS API. It is
// passed explicitly to the client instead of living in a package-level
// singleton, and it is safe for concurrent use.
//
// Lifecycle: anonymous -> Authorize (login) -> Renew (token swap, user kept)
// -> Clear (logout or failed renewal) -> anonymous.
type Session struct {
	mu                sync.RWMutex
	token             string
	user              *models.AuthUser
	refreshCredential string
}

func NewSession() *Session {
	return &Session{}
}

// Authorize installs a freshly issued token and the user it belongs to.
func (s *Session) Authorize(token string, user *models.AuthUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

// Renew replaces only the bearer token. The user identity recorded at login
// is preserved.
func (s *Session) Renew(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops all credentials, returning the session to anonymous.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.refreshCredential = ""
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetRefreshCredential stores the long-lived credential the renewal endpoint
// expects. The client calls this whenever the API sets the refresh cookie.
func (s *Session) SetRefreshCredential(cred string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCredential = cred
}

func (s *Session) RefreshCredential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshCredential
}

// Authenticated reports whether the session currently holds a token.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
