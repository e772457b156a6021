package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingua/internal/config"
	"github.com/abhisek/lingua/internal/speech"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Speak text aloud in the given language",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !cfg.SpeechEnabled() {
			return fmt.Errorf("GOOGLE_SPEECH_API_KEY is not set")
		}

		lang, _ := cmd.Flags().GetString("lang")
		synth := speech.NewGoogleSynthesizer(cfg.GoogleSpeechAPIKey, cfg.AudioCacheDir(), cfg.Player)
		return synth.Speak(cmd.Context(), strings.Join(args, " "), lang)
	},
}

func init() {
	speakCmd.Flags().String("lang", "ta", "Language code (en, hi, ta)")
}
