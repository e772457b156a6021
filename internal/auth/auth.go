// Package auth handles learner accounts against a Supabase GoTrue backend.
// Auth is optional: the app runs fully offline and only needs a session to
// associate progress with an account.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidCredentials is returned when sign-in is rejected.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")

	// ErrNoSession is returned by operations that need a signed-in user.
	ErrNoSession = errors.New("auth: no active session")
)

// Session is an authenticated user session.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Username     string    `json:"username,omitempty"`
}

// Expired reports whether the access token is past its expiry.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// DisplayName returns the username, falling back to the local part of the
// email address.
func (s *Session) DisplayName() string {
	if s.Username != "" {
		return s.Username
	}
	if at := strings.IndexByte(s.Email, '@'); at > 0 {
		return s.Email[:at]
	}
	return s.Email
}

// Client authenticates learners and tracks the active session.
type Client interface {
	// SignUp registers a new account with an optional display username.
	// Depending on backend settings the returned session may be nil until
	// the email is confirmed.
	SignUp(ctx context.Context, email, password, username string) (*Session, error)

	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignOut revokes the active session. A nil error is returned when
	// there was no session to revoke.
	SignOut(ctx context.Context) error

	// Session returns the active session, or nil when signed out.
	Session() *Session

	// OnSessionChange registers a callback invoked whenever the session
	// is established or cleared.
	OnSessionChange(fn func(*Session))
}
