package progress

import "time"

// DateLayout is the day-granular format used for LastActiveDate.
// Streak math only ever compares calendar days, never clock time.
const DateLayout = "2006-01-02"

// Stats holds the learner's cumulative counters.
type Stats struct {
	WordsLearned          int `json:"words_learned"`
	QuizzesCompleted      int `json:"quizzes_completed"`
	PronunciationAccuracy int `json:"pronunciation_accuracy"` // 0-100 running average
	TotalStudyTime        int `json:"total_study_time"`       // seconds
}

// Record is the learner's complete progress state. It is the single piece of
// shared state in the app: owned by the learner session, persisted as a whole
// after every mutation, and only ever transformed through the pure operations
// in this package.
type Record struct {
	CurrentLanguage  string   `json:"current_language"`
	Level            int      `json:"level"` // always derived from XP
	XP               int      `json:"xp"`
	Streak           int      `json:"streak"` // consecutive active days
	LastActiveDate   string   `json:"last_active_date"`
	CompletedLessons []string `json:"completed_lessons"`
	Achievements     []string `json:"achievements"`
	Stats            Stats    `json:"stats"`
}

// DefaultRecord returns a fresh record for a learner starting today.
func DefaultRecord(language string, today time.Time) Record {
	return Record{
		CurrentLanguage:  language,
		Level:            1,
		XP:               0,
		Streak:           0,
		LastActiveDate:   Day(today),
		CompletedLessons: []string{},
		Achievements:     []string{},
	}
}

// Day truncates a time to its calendar day string.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// Patch is a partial record for shallow merging via Apply. Nil fields are
// left untouched; Stats is replaced whole when set (callers merge nested
// counters themselves, this is not a deep merge).
type Patch struct {
	CurrentLanguage  *string
	Level            *int
	XP               *int
	Streak           *int
	LastActiveDate   *string
	CompletedLessons []string
	Achievements     []string
	Stats            *Stats
}
