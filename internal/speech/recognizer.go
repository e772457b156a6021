package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const recognizeURL = "https://speech.googleapis.com/v1/speech:recognize"

// recordSeconds is how long Listen captures from the microphone. Long
// enough for a single word or short phrase.
const recordSeconds = 4

// GoogleRecognizer transcribes microphone input via the Google Cloud
// Speech-to-Text REST API. Capture uses whatever recorder binary is on
// PATH (sox, arecord or ffmpeg), producing 16 kHz mono LINEAR16 WAV.
type GoogleRecognizer struct {
	apiKey     string
	recorder   string
	httpClient *http.Client
}

// NewGoogleRecognizer builds a recognizer. apiKey may be empty, in which
// case Listen returns ErrUnavailable.
func NewGoogleRecognizer(apiKey string) *GoogleRecognizer {
	return &GoogleRecognizer{
		apiKey:   apiKey,
		recorder: findRecorder(),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func findRecorder() string {
	for _, name := range []string{"rec", "arecord", "ffmpeg"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}

func (g *GoogleRecognizer) Listen(ctx context.Context, code string) (string, error) {
	if g.apiKey == "" || g.recorder == "" {
		return "", ErrUnavailable
	}

	audio, err := g.capture(ctx)
	if err != nil {
		return "", err
	}
	return g.recognize(ctx, audio, Locale(code))
}

func (g *GoogleRecognizer) capture(ctx context.Context) ([]byte, error) {
	f, err := os.CreateTemp("", "lingua-rec-*.wav")
	if err != nil {
		return nil, fmt.Errorf("temp capture file: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	args := recorderArgs(g.recorder, path)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("record audio: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}
	return data, nil
}

func recorderArgs(recorder, path string) []string {
	dur := fmt.Sprintf("%d", recordSeconds)
	switch filepath.Base(recorder) {
	case "rec":
		return []string{recorder, "-q", "-r", "16000", "-c", "1", "-b", "16", path, "trim", "0", dur}
	case "arecord":
		return []string{recorder, "-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-d", dur, path}
	default: // ffmpeg
		return []string{recorder, "-loglevel", "quiet", "-f", "alsa", "-i", "default",
			"-ar", "16000", "-ac", "1", "-t", dur, "-y", path}
	}
}

func (g *GoogleRecognizer) recognize(ctx context.Context, audio []byte, locale string) (string, error) {
	reqBody := map[string]any{
		"config": map[string]any{
			"encoding":        "LINEAR16",
			"sampleRateHertz": 16000,
			"languageCode":    locale,
		},
		"audio": map[string]string{
			"content": base64.StdEncoding.EncodeToString(audio),
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		recognizeURL+"?key="+g.apiKey, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognize request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recognize API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Results []struct {
			Alternatives []struct {
				Transcript string `json:"transcript"`
			} `json:"alternatives"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	// No results means silence or unintelligible audio, not an error.
	if len(result.Results) == 0 || len(result.Results[0].Alternatives) == 0 {
		return "", nil
	}
	return result.Results[0].Alternatives[0].Transcript, nil
}
