package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// sessionCache persists the session to a JSON file so the learner stays
// signed in between runs.
type sessionCache struct {
	path string
}

func (c *sessionCache) load() (*Session, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// Unreadable cache is the same as no cache.
		return nil, nil
	}
	return &s, nil
}

func (c *sessionCache) save(s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o600)
}

func (c *sessionCache) remove() error {
	err := os.Remove(c.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
