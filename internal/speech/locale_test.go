package speech

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestLocale(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"ta", "ta-IN"},
		{"hi", "hi-IN"},
		{"en", "en-US"},
		{"xx", "en-US"},
		{"", "en-US"},
	}
	for _, tc := range cases {
		if got := Locale(tc.code); got != tc.want {
			t.Errorf("Locale(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestSynthesisLocalesTamilFallback(t *testing.T) {
	got := SynthesisLocales("ta")
	want := []string{"ta-IN", "hi-IN"}
	if !slices.Equal(got, want) {
		t.Errorf("SynthesisLocales(ta) = %v, want %v", got, want)
	}

	if got := SynthesisLocales("hi"); !slices.Equal(got, []string{"hi-IN"}) {
		t.Errorf("SynthesisLocales(hi) = %v", got)
	}
}

func TestNopServicesReportUnavailable(t *testing.T) {
	if err := (NopSynthesizer{}).Speak(context.Background(), "hello", "en"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NopSynthesizer error = %v, want ErrUnavailable", err)
	}
	if _, err := (NopRecognizer{}).Listen(context.Background(), "en"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NopRecognizer error = %v, want ErrUnavailable", err)
	}
}

func TestGoogleSynthesizerWithoutKey(t *testing.T) {
	g := NewGoogleSynthesizer("", t.TempDir(), "mpv")
	if err := g.Speak(context.Background(), "vanakkam", "ta"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Speak without key = %v, want ErrUnavailable", err)
	}
}

func TestFakeRecognizerQueue(t *testing.T) {
	f := &FakeRecognizer{Transcripts: []string{"namaste", "dhanyavad"}}
	ctx := context.Background()

	for _, want := range []string{"namaste", "dhanyavad", ""} {
		got, err := f.Listen(ctx, "hi")
		if err != nil {
			t.Fatalf("Listen: %v", err)
		}
		if got != want {
			t.Errorf("Listen = %q, want %q", got, want)
		}
	}
}
