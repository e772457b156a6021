// Package learn is the flashcard study screen with pronunciation practice.
package learn

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/lingua/internal/learner"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/pronounce"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/speech"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/words"
)

// completionXP is awarded once when a study session ends with at least one
// word studied.
const completionXP = 25

// phase tracks what the learn screen is doing.
type phase int

const (
	phaseStudy phase = iota
	phaseListening
	phaseFeedback
	phaseSummary
)

// LearnScreen runs a flashcard session over the active language's words.
type LearnScreen struct {
	tracker *learner.Tracker
	events  store.EventRepo
	synth   speech.Synthesizer
	recog   speech.Recognizer

	sessionID string
	language  string
	pool      []words.Word
	index     int
	revealed  bool
	phase     phase
	session   pronounce.Session
	lastScore pronounce.Score
	xpEarned  int
	started   time.Time
	status    string
}

var _ screen.Screen = (*LearnScreen)(nil)

// New creates a LearnScreen over the learner's current language.
func New(tracker *learner.Tracker, events store.EventRepo, synth speech.Synthesizer, recog speech.Recognizer) *LearnScreen {
	rec := tracker.Record()
	return &LearnScreen{
		tracker:   tracker,
		events:    events,
		synth:     synth,
		recog:     recog,
		sessionID: uuid.NewString(),
		language:  rec.CurrentLanguage,
		pool:      words.ForLanguage(rec.CurrentLanguage),
		started:   time.Now(),
	}
}

func (s *LearnScreen) current() *words.Word {
	if s.index >= len(s.pool) {
		return nil
	}
	return &s.pool[s.index]
}

func (s *LearnScreen) Init() tea.Cmd {
	if len(s.pool) == 0 {
		return nil
	}
	s.tracker.Reconcile(context.Background(), time.Now())
	s.session.WordsStudied = 1
	events, sessionID, lang := s.events, s.sessionID, s.language
	return func() tea.Msg {
		err := events.AppendSession(context.Background(), store.SessionEventData{
			SessionID: sessionID,
			Action:    "start",
			Language:  lang,
		})
		return persistDoneMsg{err: err}
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case persistDoneMsg:
		return s, nil

	case audioDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			s.status = "Audio unavailable"
		}
		return s, nil

	case listenResultMsg:
		return s, s.handleAttempt(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseListening:
		return s, nil // wait for the microphone

	case phaseFeedback:
		s.phase = phaseStudy
		return s, nil

	case phaseSummary:
		switch msg.String() {
		case "enter", "q":
			return s, s.finish()
		}
		return s, nil
	}

	s.status = ""
	switch msg.String() {
	case " ", "space":
		s.revealed = !s.revealed
	case "a":
		return s, s.playAudio()
	case "p":
		return s, s.startListening()
	case "n", "enter":
		return s, s.nextWord()
	case "q":
		s.phase = phaseSummary
	}
	return s, nil
}

func (s *LearnScreen) playAudio() tea.Cmd {
	w := s.current()
	if w == nil {
		return nil
	}
	synth, lang, text := s.synth, s.language, w.Word
	return func() tea.Msg {
		err := synth.Speak(context.Background(), text, lang)
		return audioDoneMsg{err: err}
	}
}

func (s *LearnScreen) startListening() tea.Cmd {
	w := s.current()
	if w == nil {
		return nil
	}
	s.phase = phaseListening
	recog, lang := s.recog, s.language
	return func() tea.Msg {
		transcript, err := recog.Listen(context.Background(), lang)
		return listenResultMsg{transcript: transcript, err: err}
	}
}

// handleAttempt scores the transcript against the current word. The spoken
// form is matched against both the written word and its romanized
// pronunciation; the better match counts.
func (s *LearnScreen) handleAttempt(msg listenResultMsg) tea.Cmd {
	w := s.current()
	if w == nil {
		s.phase = phaseStudy
		return nil
	}

	if errors.Is(msg.err, speech.ErrUnavailable) {
		s.phase = phaseStudy
		s.status = "Speech recognition is not configured"
		return nil
	}

	var score pronounce.Score
	if msg.err != nil || msg.transcript == "" {
		score = pronounce.FailureScore()
	} else {
		score = pronounce.Assess(msg.transcript, w.Word)
		if alt := pronounce.Assess(msg.transcript, w.Pronunciation); alt.Accuracy > score.Accuracy {
			score = alt
		}
	}

	s.lastScore = score
	s.session.Record(score)
	s.phase = phaseFeedback

	if score.Passed() {
		s.tracker.AddXP(context.Background(), pronounce.AttemptXP)
		s.xpEarned += pronounce.AttemptXP
	}

	events, sessionID, lang, wordID := s.events, s.sessionID, s.language, w.ID
	return func() tea.Msg {
		err := events.AppendPronunciation(context.Background(), store.PronunciationEventData{
			SessionID: sessionID,
			Language:  lang,
			WordID:    wordID,
			Accuracy:  score.Accuracy,
			Tier:      string(score.Tier),
			Passed:    score.Passed(),
		})
		return persistDoneMsg{err: err}
	}
}

// nextWord completes the current word's lesson and advances. After the
// last card the session moves to the summary.
func (s *LearnScreen) nextWord() tea.Cmd {
	w := s.current()
	if w == nil {
		s.phase = phaseSummary
		return nil
	}

	if _, added := s.tracker.CompleteLesson(context.Background(), w.ID); added {
		s.xpEarned += progress.LessonXP
	}

	if s.index < len(s.pool)-1 {
		s.index++
		s.revealed = false
		s.session.WordsStudied++
		return nil
	}
	s.phase = phaseSummary
	return nil
}

// finish awards the completion bonus, adds the study time, logs the
// session end, and pops back.
func (s *LearnScreen) finish() tea.Cmd {
	duration := int(time.Since(s.started).Seconds())
	if s.session.WordsStudied > 0 {
		s.tracker.AddXP(context.Background(), completionXP)
		s.xpEarned += completionXP

		stats := s.tracker.Record().Stats
		stats.TotalStudyTime += duration
		s.tracker.Apply(context.Background(), progress.Patch{Stats: &stats})
	}

	events, sessionID, lang := s.events, s.sessionID, s.language
	sess := s.session
	return tea.Batch(
		func() tea.Msg {
			err := events.AppendSession(context.Background(), store.SessionEventData{
				SessionID:    sessionID,
				Action:       "end",
				Language:     lang,
				WordsStudied: sess.WordsStudied,
				Attempts:     sess.Attempts,
				Correct:      sess.Correct,
				DurationSecs: duration,
			})
			return persistDoneMsg{err: err}
		},
		func() tea.Msg { return router.PopScreenMsg{} },
	)
}

func (s *LearnScreen) Title() string {
	return "Learn Words"
}

// KeyHints customizes the footer for the active phase.
func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseListening:
		return []layout.KeyHint{{Key: "🎙", Description: "Listening..."}}
	case phaseFeedback:
		return []layout.KeyHint{{Key: "Any key", Description: "Continue"}}
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "a", Description: "Hear it"},
		{Key: "p", Description: "Practice"},
		{Key: "n", Description: "Next"},
		{Key: "q", Description: "End session"},
	}
}
