package quiz

import (
	"math"

	"github.com/google/uuid"

	"github.com/abhisek/lingua/internal/progress"
)

// State tracks a quiz session's lifecycle.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

// AnswerResult reports the outcome of answering one question.
type AnswerResult struct {
	Correct      bool
	CorrectIndex int
	XP           int // per-question XP earned (0 when wrong)
}

// Completion is the final result of a quiz, produced exactly once.
type Completion struct {
	Score    int
	Total    int
	Accuracy int // 0-100
	BonusXP  int
}

// StatsPatch folds this completion into the learner's cumulative stats.
// The accuracy figure is a two-sample running average with the previous
// stored value, matching the displayed stat's semantics.
func (c Completion) StatsPatch(prev progress.Stats) progress.Stats {
	next := prev
	next.QuizzesCompleted = prev.QuizzesCompleted + 1
	next.PronunciationAccuracy = int(math.Round(float64(prev.PronunciationAccuracy+c.Accuracy) / 2))
	return next
}

// Session is one quiz run: NotStarted -> InProgress -> Completed.
// It is single-writer state driven by the UI event loop; it never touches
// the progress record itself, only reports deltas for the caller to apply.
type Session struct {
	ID        string
	Type      Type
	Config    Config
	Questions []Question

	state State
	index int
	score int
}

// NewSession creates a session over pre-generated questions.
func NewSession(t Type, qs []Question) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Type:      t,
		Config:    ConfigFor(t),
		Questions: qs,
	}
}

// Start moves the session to InProgress. No-op if there are no questions.
func (s *Session) Start() {
	if s.state == NotStarted && len(s.Questions) > 0 {
		s.state = InProgress
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Current returns the active question, or nil outside InProgress.
func (s *Session) Current() *Question {
	if s.state != InProgress || s.index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.index]
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Answer records the selected option index for the current question.
// TimeUpIndex counts as an incorrect answer. The session stays on the
// current question until Advance, so the UI can show feedback first.
func (s *Session) Answer(selected int) AnswerResult {
	q := s.Current()
	if q == nil {
		return AnswerResult{}
	}
	result := AnswerResult{CorrectIndex: q.CorrectIndex}
	if selected == q.CorrectIndex {
		s.score++
		result.Correct = true
		result.XP = s.Config.QuestionXP
	}
	return result
}

// Advance moves to the next question, or completes the session after the
// last one. Returns true while more questions remain.
func (s *Session) Advance() bool {
	if s.state != InProgress {
		return false
	}
	if s.index < len(s.Questions)-1 {
		s.index++
		return true
	}
	s.state = Completed
	return false
}

// Finish computes the completion result. Valid once the session is Completed.
func (s *Session) Finish() Completion {
	total := len(s.Questions)
	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(float64(s.score) / float64(total) * 100))
	}
	bonus := 0
	switch {
	case accuracy >= BonusHighAccuracy:
		bonus = BonusHighXP
	case accuracy >= BonusMidAccuracy:
		bonus = BonusMidXP
	}
	return Completion{Score: s.score, Total: total, Accuracy: accuracy, BonusXP: bonus}
}
