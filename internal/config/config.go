// Package config loads app settings from the environment, with an optional
// .env file for development.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment. All fields
// are optional: missing speech or auth settings disable those features
// rather than failing startup.
type Config struct {
	// SupabaseURL and SupabaseAnonKey point at the auth backend.
	SupabaseURL     string
	SupabaseAnonKey string

	// GoogleSpeechAPIKey enables text-to-speech and speech recognition.
	GoogleSpeechAPIKey string

	// DBPath is the SQLite database file. Empty means the default
	// location under the user data directory.
	DBPath string

	// Player overrides the audio player binary used for playback.
	Player string

	// DataDir is where custom word lists and the session cache live.
	DataDir string
}

// Load reads configuration. A .env file in the working directory is
// applied first when present; real environment variables win.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
		GoogleSpeechAPIKey: os.Getenv("GOOGLE_SPEECH_API_KEY"),
		DBPath:             os.Getenv("LINGUA_DB"),
		Player:             os.Getenv("LINGUA_PLAYER"),
	}

	dataDir, err := defaultDataDir()
	if err != nil {
		return cfg, err
	}
	cfg.DataDir = dataDir
	return cfg, nil
}

// AuthEnabled reports whether enough settings exist to talk to the auth
// backend.
func (c Config) AuthEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

// SpeechEnabled reports whether the speech API key is configured.
func (c Config) SpeechEnabled() bool {
	return c.GoogleSpeechAPIKey != ""
}

// SessionCachePath is where the auth session is persisted.
func (c Config) SessionCachePath() string {
	return filepath.Join(c.DataDir, "session.json")
}

// AudioCacheDir is where synthesized audio clips are cached.
func (c Config) AudioCacheDir() string {
	return filepath.Join(c.DataDir, "audio")
}

func defaultDataDir() (string, error) {
	if dir := os.Getenv("LINGUA_DATA_DIR"); dir != "" {
		return dir, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lingua"), nil
}
