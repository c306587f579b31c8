package store

import "github.com/gufrankhursheed/job-platform-frontend/internal/client/models"

// LoginStart marks an authentication attempt in flight and clears any
// previous failure.
func (s *Store) LoginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authLoading = true
	s.authErr = ""
}

// LoginSuccess installs the authenticated user.
func (s *Store) LoginSuccess(user models.UserSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authLoading = false
	s.user = &user
}

// LoginFailure records a failed attempt; the session stays logged out.
func (s *Store) LoginFailure(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authLoading = false
	s.authErr = msg
}

// User returns the current user, or false when logged out.
func (s *Store) User() (models.UserSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.UserSummary{}, false
	}
	return *s.user, true
}

func (s *Store) AuthError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authErr
}

func (s *Store) AuthLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authLoading
}
