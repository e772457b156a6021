package pronounce

import "math"

// Session tracks ephemeral per-session pronunciation counters. These live
// only for one learning session and are never persisted; the durable
// running average lives in the progress record.
type Session struct {
	WordsStudied int
	Attempts     int
	Correct      int
}

// Record counts one attempt and reports whether it passed.
func (s *Session) Record(score Score) bool {
	s.Attempts++
	if score.Passed() {
		s.Correct++
		return true
	}
	return false
}

// Accuracy returns the session accuracy percentage, 0 when no attempts yet.
func (s *Session) Accuracy() int {
	if s.Attempts == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Attempts) * 100))
}
