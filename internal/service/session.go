package service

import (
	"slices"
	"sync"

	"github.com/stacksapp/stacks/internal/domain"
)

// SessionService owns the client-side session: role selection,
// authentication flag, the signed-in user's checked-out books, and a
// one-shot user-facing notice. Screens read copies and issue update
// intents; nothing mutates session state in place.
type SessionService struct {
	mu      sync.Mutex
	session domain.Session
	notice  string
}

// NewSessionService creates a session in the unset, unauthenticated state.
func NewSessionService() *SessionService {
	return &SessionService{}
}

// Session returns a copy of the current session. The checked-out list is
// cloned so callers cannot alias internal state.
func (s *SessionService) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session
	sess.CheckedOutBooks = slices.Clone(sess.CheckedOutBooks)
	return sess
}

// SetRole records the chosen role. The sign-in screen never resets a role
// once one has been chosen.
func (s *SessionService) SetRole(role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Role = role
}

// SignedIn marks the session authenticated and stores the grant's user ID
// and checked-out list.
func (s *SessionService) SignedIn(grant domain.AuthGrant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Authenticated = true
	s.session.UserID = grant.UserID
	s.session.CheckedOutBooks = slices.Clone(grant.CheckedOutBooks)
}

// SetCheckedOutBooks replaces the checked-out list.
func (s *SessionService) SetCheckedOutBooks(isbns []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.CheckedOutBooks = slices.Clone(isbns)
}

// AddCheckedOut appends an ISBN to the checked-out list after a successful
// borrow.
func (s *SessionService) AddCheckedOut(isbn string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.Contains(s.session.CheckedOutBooks, isbn) {
		s.session.CheckedOutBooks = append(s.session.CheckedOutBooks, isbn)
	}
}

// RemoveCheckedOut drops an ISBN from the checked-out list after a
// successful return.
func (s *SessionService) RemoveCheckedOut(isbn string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.CheckedOutBooks = slices.DeleteFunc(s.session.CheckedOutBooks, func(b string) bool {
		return b == isbn
	})
}

// HasCheckedOut reports whether the signed-in user currently holds the
// given book.
func (s *SessionService) HasCheckedOut(isbn string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.session.CheckedOutBooks, isbn)
}

// PostNotice queues a one-shot user-facing message.
func (s *SessionService) PostNotice(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = msg
}

// ConsumeNotice returns the pending notice and clears it. Clearing on
// consumption means an identical later notice still triggers a fresh
// display instead of being swallowed by change detection.
func (s *SessionService) ConsumeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	notice := s.notice
	s.notice = ""
	return notice
}
