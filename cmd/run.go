package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/lingua/internal/app"
	"github.com/abhisek/lingua/internal/auth"
	"github.com/abhisek/lingua/internal/config"
	"github.com/abhisek/lingua/internal/learner"
	"github.com/abhisek/lingua/internal/speech"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/words"
	"github.com/spf13/cobra"
)

// defaultLanguage is used for a brand-new progress record.
const defaultLanguage = "ta"

// runApp loads config, opens the store, builds services, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPathWithConfig(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	words.LoadCustom(cfg.DataDir)

	tracker, err := learner.Load(ctx, st.ProgressRepo(), defaultLanguage, time.Now())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	opts := app.Options{
		Tracker: tracker,
		Events:  st.EventRepo(),
		Synth:   speech.NopSynthesizer{},
		Recog:   speech.NopRecognizer{},
	}

	if cfg.AuthEnabled() {
		opts.Auth = auth.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SessionCachePath())
	}
	if cfg.SpeechEnabled() {
		opts.Synth = speech.NewGoogleSynthesizer(cfg.GoogleSpeechAPIKey, cfg.AudioCacheDir(), cfg.Player)
		opts.Recog = speech.NewGoogleRecognizer(cfg.GoogleSpeechAPIKey)
	}

	return app.Run(opts)
}

// resolveDBPathWithConfig prefers the --db flag, then the configured path,
// then the default XDG path.
func resolveDBPathWithConfig(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
