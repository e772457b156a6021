package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testToken(t *testing.T, userID, email string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}

func authServer(t *testing.T, password string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/auth/v1/token":
			var creds struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			json.NewDecoder(r.Body).Decode(&creds)
			if creds.Password != password {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  testToken(t, "user-1", creds.Email),
				"refresh_token": "refresh-1",
				"expires_in":    3600,
				"user": map[string]string{
					"id":    "user-1",
					"email": creds.Email,
				},
			})
		case "/auth/v1/signup":
			// Email confirmation enabled: user created, no token yet.
			json.NewEncoder(w).Encode(map[string]any{
				"id": "user-2",
			})
		case "/auth/v1/logout":
			if r.Header.Get("Authorization") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestSignInEstablishesSession(t *testing.T) {
	srv := authServer(t, "hunter22")
	defer srv.Close()

	var notified []*Session
	c := NewSupabaseClient(srv.URL, "anon-key", "")
	c.OnSessionChange(func(s *Session) { notified = append(notified, s) })

	s, err := c.SignIn(context.Background(), "amma@example.com", "hunter22")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if s.UserID != "user-1" || s.Email != "amma@example.com" {
		t.Errorf("session identity = %q/%q", s.UserID, s.Email)
	}
	if s.AccessToken == "" || s.Expired() {
		t.Error("expected a live access token")
	}
	if c.Session() == nil {
		t.Error("Session() should return the active session")
	}
	if len(notified) != 1 || notified[0] == nil {
		t.Errorf("expected one session-change notification, got %d", len(notified))
	}
}

func TestSignInRejectsBadPassword(t *testing.T) {
	srv := authServer(t, "hunter22")
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon-key", "")
	_, err := c.SignIn(context.Background(), "amma@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("SignIn error = %v, want ErrInvalidCredentials", err)
	}
	if c.Session() != nil {
		t.Error("no session should be set after failed sign-in")
	}
}

func TestSignUpPendingConfirmation(t *testing.T) {
	srv := authServer(t, "hunter22")
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon-key", "")
	s, err := c.SignUp(context.Background(), "new@example.com", "hunter22", "newbie")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if s != nil {
		t.Error("expected nil session when confirmation is pending")
	}
}

func TestSignOutClearsSession(t *testing.T) {
	srv := authServer(t, "hunter22")
	defer srv.Close()

	var last *Session = &Session{}
	c := NewSupabaseClient(srv.URL, "anon-key", "")
	c.OnSessionChange(func(s *Session) { last = s })

	if _, err := c.SignIn(context.Background(), "amma@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := c.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if c.Session() != nil {
		t.Error("session should be cleared after sign-out")
	}
	if last != nil {
		t.Error("listener should have seen a nil session")
	}
}

func TestSessionPersistsAcrossClients(t *testing.T) {
	srv := authServer(t, "hunter22")
	defer srv.Close()

	cachePath := filepath.Join(t.TempDir(), "session.json")
	c := NewSupabaseClient(srv.URL, "anon-key", cachePath)
	if _, err := c.SignIn(context.Background(), "amma@example.com", "hunter22"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	c2 := NewSupabaseClient(srv.URL, "anon-key", cachePath)
	s := c2.Session()
	if s == nil {
		t.Fatal("expected restored session from cache")
	}
	if s.Email != "amma@example.com" {
		t.Errorf("restored email = %q", s.Email)
	}
}

func TestDisplayName(t *testing.T) {
	s := &Session{Email: "amma@example.com"}
	if got := s.DisplayName(); got != "amma" {
		t.Errorf("DisplayName() = %q, want %q", got, "amma")
	}
	s.Username = "Amma"
	if got := s.DisplayName(); got != "Amma" {
		t.Errorf("DisplayName() = %q, want %q", got, "Amma")
	}
}

func TestSignOutWithoutSession(t *testing.T) {
	c := NewSupabaseClient("http://localhost:1", "anon-key", "")
	if err := c.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut without session = %v, want nil", err)
	}
}
