package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SupabaseClient implements Client against the Supabase GoTrue REST API.
// The session survives restarts via an on-disk cache.
type SupabaseClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client

	mu        sync.Mutex
	session   *Session
	cache     *sessionCache
	listeners []func(*Session)
}

// NewSupabaseClient builds a client for the project at baseURL using its
// anon API key. cachePath may be empty to disable session persistence.
func NewSupabaseClient(baseURL, anonKey, cachePath string) *SupabaseClient {
	c := &SupabaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	if cachePath != "" {
		c.cache = &sessionCache{path: cachePath}
		if s, err := c.cache.load(); err == nil && s != nil && !s.Expired() {
			c.session = s
		}
	}
	return c
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		UserMetadata struct {
			Username string `json:"username"`
		} `json:"user_metadata"`
	} `json:"user"`
}

func (c *SupabaseClient) SignUp(ctx context.Context, email, password, username string) (*Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if username != "" {
		body["data"] = map[string]string{"username": username}
	}
	var tok tokenResponse
	err := c.post(ctx, "/auth/v1/signup", "", body, &tok)
	if err != nil {
		return nil, err
	}

	// Projects with email confirmation enabled return a user but no token.
	if tok.AccessToken == "" {
		return nil, nil
	}
	return c.adopt(tok), nil
}

func (c *SupabaseClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var tok tokenResponse
	err := c.post(ctx, "/auth/v1/token?grant_type=password", "", map[string]string{
		"email":    email,
		"password": password,
	}, &tok)
	if err != nil {
		return nil, err
	}
	return c.adopt(tok), nil
}

func (c *SupabaseClient) SignOut(ctx context.Context) error {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()
	if s == nil {
		return nil
	}

	// Best effort: clear locally even if the revoke call fails.
	err := c.post(ctx, "/auth/v1/logout", s.AccessToken, nil, nil)
	c.clear()
	return err
}

func (c *SupabaseClient) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil && c.session.Expired() {
		return nil
	}
	return c.session
}

func (c *SupabaseClient) OnSessionChange(fn func(*Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// adopt converts a token response into the active session and notifies
// listeners.
func (c *SupabaseClient) adopt(tok tokenResponse) *Session {
	s := &Session{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second),
		UserID:       tok.User.ID,
		Email:        tok.User.Email,
		Username:     tok.User.UserMetadata.Username,
	}
	fillFromClaims(s)

	c.mu.Lock()
	c.session = s
	if c.cache != nil {
		c.cache.save(s)
	}
	listeners := append([]func(*Session){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
	return s
}

func (c *SupabaseClient) clear() {
	c.mu.Lock()
	c.session = nil
	if c.cache != nil {
		c.cache.remove()
	}
	listeners := append([]func(*Session){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
}

// fillFromClaims backfills user identity and expiry from the JWT when the
// response body omitted them. The token was just issued by the server, so
// it is parsed without signature verification.
func fillFromClaims(s *Session) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return
	}
	if s.UserID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			s.UserID = sub
		}
	}
	if s.Email == "" {
		if email, ok := claims["email"].(string); ok {
			s.Email = email
		}
	}
	if s.ExpiresAt.IsZero() {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			s.ExpiresAt = exp.Time
		}
	}
	if s.Username == "" {
		if meta, ok := claims["user_metadata"].(map[string]any); ok {
			if name, ok := meta["username"].(string); ok {
				s.Username = name
			}
		}
	}
}

type apiError struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (c *SupabaseClient) post(ctx context.Context, path, bearer string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	} else {
		req.Header.Set("Authorization", "Bearer "+c.anonKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return ErrInvalidCredentials
		}
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil {
			msg := apiErr.Message
			if msg == "" {
				msg = apiErr.ErrorDescription
			}
			if msg == "" {
				msg = apiErr.Error
			}
			if msg != "" {
				return fmt.Errorf("auth error %d: %s", resp.StatusCode, msg)
			}
		}
		return fmt.Errorf("auth error %d", resp.StatusCode)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}
