// Package speech provides text-to-speech playback and speech recognition
// for practice sessions. Both sides degrade gracefully: when no API key or
// audio tooling is available, callers receive ErrUnavailable and the app
// keeps working without sound.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable signals that speech services cannot be used right now,
// typically because no API key is configured or no audio tool was found.
var ErrUnavailable = errors.New("speech: service unavailable")

// Synthesizer speaks text out loud in a given language.
type Synthesizer interface {
	// Speak synthesizes text in the language identified by code (e.g. "ta")
	// and plays it through the local audio player.
	Speak(ctx context.Context, text, code string) error
}

// Recognizer captures a short utterance from the microphone and returns
// the transcript.
type Recognizer interface {
	// Listen records for a few seconds and transcribes the result in the
	// language identified by code. An empty transcript with a nil error
	// means nothing intelligible was heard.
	Listen(ctx context.Context, code string) (string, error)
}

// NopSynthesizer is a Synthesizer that reports ErrUnavailable. Used when
// speech is not configured.
type NopSynthesizer struct{}

func (NopSynthesizer) Speak(context.Context, string, string) error { return ErrUnavailable }

// NopRecognizer is a Recognizer that reports ErrUnavailable.
type NopRecognizer struct{}

func (NopRecognizer) Listen(context.Context, string) (string, error) { return "", ErrUnavailable }

// FakeSynthesizer records Speak calls for tests.
type FakeSynthesizer struct {
	Spoken []string
	Err    error
}

func (f *FakeSynthesizer) Speak(_ context.Context, text, _ string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Spoken = append(f.Spoken, text)
	return nil
}

// FakeRecognizer returns queued transcripts in order, for tests.
type FakeRecognizer struct {
	Transcripts []string
	Err         error
	calls       int
}

func (f *FakeRecognizer) Listen(context.Context, string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if f.calls >= len(f.Transcripts) {
		return "", nil
	}
	t := f.Transcripts[f.calls]
	f.calls++
	return t, nil
}
