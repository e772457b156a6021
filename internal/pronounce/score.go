package pronounce

import (
	"math"
	"strings"
)

// PassAccuracy is the accuracy threshold counting as a correct pronunciation.
const PassAccuracy = 70

// AttemptXP is awarded for each passing pronunciation attempt.
const AttemptXP = 10

// Tier classifies an accuracy score into learner feedback.
type Tier string

const (
	TierGreat          Tier = "great"
	TierGoodEffort     Tier = "good_effort"
	TierKeepPracticing Tier = "keep_practicing"
)

// Score is the result of assessing one pronunciation attempt.
type Score struct {
	Accuracy int // 0-100
	Tier     Tier
	Feedback string
}

// Passed reports whether the attempt counts as a correct pronunciation.
func (s Score) Passed() bool {
	return s.Accuracy >= PassAccuracy
}

// Similarity computes a normalized similarity in [0,1] between what was
// spoken and the target word. Comparison is case-insensitive and trimmed;
// two empty strings are identical.
func Similarity(spoken, target string) float64 {
	a := strings.ToLower(strings.TrimSpace(spoken))
	b := strings.ToLower(strings.TrimSpace(target))

	longer, shorter := a, b
	if len([]rune(b)) > len([]rune(a)) {
		longer, shorter = b, a
	}
	n := len([]rune(longer))
	if n == 0 {
		return 1.0
	}

	dist := Levenshtein(longer, shorter)
	return float64(n-dist) / float64(n)
}

// Assess scores a spoken transcript against the target word.
func Assess(spoken, target string) Score {
	accuracy := int(math.Round(Similarity(spoken, target) * 100))
	return Score{
		Accuracy: accuracy,
		Tier:     Classify(accuracy),
		Feedback: feedbackFor(Classify(accuracy)),
	}
}

// Classify maps an accuracy percentage to its feedback tier.
func Classify(accuracy int) Tier {
	switch {
	case accuracy >= PassAccuracy:
		return TierGreat
	case accuracy >= 50:
		return TierGoodEffort
	default:
		return TierKeepPracticing
	}
}

// FailureScore is the result surfaced when recognition itself failed
// (no speech detected, permission denied). Not fatal: the learner just
// presses record again.
func FailureScore() Score {
	return Score{
		Accuracy: 0,
		Tier:     TierKeepPracticing,
		Feedback: "Could not detect speech. Try again!",
	}
}

func feedbackFor(t Tier) string {
	switch t {
	case TierGreat:
		return "Great pronunciation!"
	case TierGoodEffort:
		return "Good effort, try again!"
	default:
		return "Keep practicing!"
	}
}
