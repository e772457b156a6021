package quiz

import "time"

// Type selects the quiz length and pacing.
type Type string

const (
	TypeQuick     Type = "quick"
	TypeTimed     Type = "timed"
	TypeChallenge Type = "challenge"
)

// AllTypes returns the quiz types in display order.
func AllTypes() []Type {
	return []Type{TypeQuick, TypeTimed, TypeChallenge}
}

// Config fixes the timing and reward policy for a quiz type. The generator
// and session never negotiate these; they come straight from this table.
type Config struct {
	Questions   int
	PerQuestion time.Duration // soft timer per question
	QuestionXP  int           // awarded per correct answer during play
}

// ConfigFor returns the fixed configuration for a quiz type.
func ConfigFor(t Type) Config {
	switch t {
	case TypeTimed:
		return Config{Questions: 10, PerQuestion: 30 * time.Second, QuestionXP: 15}
	case TypeChallenge:
		return Config{Questions: 15, PerQuestion: 15 * time.Second, QuestionXP: 20}
	default:
		return Config{Questions: 5, PerQuestion: 60 * time.Second, QuestionXP: 10}
	}
}

// DisplayName returns a label for the quiz type.
func (t Type) DisplayName() string {
	switch t {
	case TypeTimed:
		return "Timed Challenge"
	case TypeChallenge:
		return "Expert Challenge"
	default:
		return "Quick Quiz"
	}
}

// Description returns a short pitch for the quiz type picker.
func (t Type) Description() string {
	switch t {
	case TypeTimed:
		return "10 questions, 30s each"
	case TypeChallenge:
		return "15 questions, 15s each"
	default:
		return "5 questions, relaxed timing"
	}
}

// Completion bonus thresholds and awards.
const (
	BonusHighAccuracy = 80
	BonusHighXP       = 50
	BonusMidAccuracy  = 60
	BonusMidXP        = 25
)

// FeedbackDelay is how long answer feedback stays on screen before the quiz
// auto-advances to the next question.
const FeedbackDelay = 2 * time.Second

// TimeUpIndex is the sentinel answer index recorded when the question timer
// expires with nothing selected.
const TimeUpIndex = -1
