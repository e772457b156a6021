package speech

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"
)

const synthesizeURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

// GoogleSynthesizer speaks via the Google Cloud Text-to-Speech REST API.
// Synthesized clips are cached on disk keyed by locale and text, so
// repeated flashcard playback costs one API call.
type GoogleSynthesizer struct {
	apiKey     string
	cacheDir   string
	player     string
	mu         sync.Mutex
	httpClient *http.Client
}

// NewGoogleSynthesizer builds a synthesizer. apiKey may be empty, in which
// case Speak returns ErrUnavailable. player is the audio player binary; if
// empty, a common one is located on PATH.
func NewGoogleSynthesizer(apiKey, cacheDir, player string) *GoogleSynthesizer {
	os.MkdirAll(cacheDir, 0o755)
	if player == "" {
		player = findPlayer()
	}
	return &GoogleSynthesizer{
		apiKey:   apiKey,
		cacheDir: cacheDir,
		player:   player,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func findPlayer() string {
	for _, name := range []string{"mpv", "ffplay", "afplay", "mpg123"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}

func cacheKey(text, locale string) string {
	h := sha256.Sum256([]byte(locale + ":" + text))
	return hex.EncodeToString(h[:16])
}

func (g *GoogleSynthesizer) Speak(ctx context.Context, text, code string) error {
	if g.apiKey == "" || g.player == "" {
		return ErrUnavailable
	}

	var lastErr error
	for _, locale := range SynthesisLocales(code) {
		audio, err := g.audio(ctx, text, locale)
		if err != nil {
			lastErr = err
			continue
		}
		return g.play(ctx, audio)
	}
	return lastErr
}

// audio returns cached audio for text, synthesizing on a miss.
func (g *GoogleSynthesizer) audio(ctx context.Context, text, locale string) ([]byte, error) {
	cachePath := filepath.Join(g.cacheDir, cacheKey(text, locale)+".mp3")
	if data, err := os.ReadFile(cachePath); err == nil {
		return data, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Double-check cache after acquiring lock
	if data, err := os.ReadFile(cachePath); err == nil {
		return data, nil
	}

	data, err := g.synthesize(ctx, text, locale)
	if err != nil {
		return nil, err
	}
	os.WriteFile(cachePath, data, 0o644)
	return data, nil
}

func (g *GoogleSynthesizer) synthesize(ctx context.Context, text, locale string) ([]byte, error) {
	reqBody := map[string]any{
		"input": map[string]string{
			"text": text,
		},
		"voice": map[string]any{
			"languageCode": locale,
			"ssmlGender":   "FEMALE",
		},
		"audioConfig": map[string]string{
			"audioEncoding": "MP3",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		synthesizeURL+"?key="+g.apiKey, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesize request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesize API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	return audio, nil
}

// play writes the clip to a temp file and runs the configured player.
func (g *GoogleSynthesizer) play(ctx context.Context, audio []byte) error {
	f, err := os.CreateTemp("", "lingua-*.mp3")
	if err != nil {
		return fmt.Errorf("temp audio file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(audio); err != nil {
		f.Close()
		return fmt.Errorf("write audio: %w", err)
	}
	f.Close()

	args := playerArgs(g.player, path)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}

// playerArgs builds the command line for the given player binary. ffplay
// needs flags to exit when the clip ends and to stay headless.
func playerArgs(player, path string) []string {
	switch filepath.Base(player) {
	case "ffplay":
		return []string{player, "-nodisp", "-autoexit", "-loglevel", "quiet", path}
	case "mpv":
		return []string{player, "--no-video", "--really-quiet", path}
	default:
		return []string{player, path}
	}
}
