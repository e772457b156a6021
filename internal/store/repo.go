package store

import (
	"context"
	"time"

	"github.com/abhisek/lingua/internal/progress"
)

// Snapshot is a point-in-time capture of the learner's progress record.
type Snapshot struct {
	ID        int
	Timestamp time.Time
	Record    progress.Record
}

// ProgressRepo persists the progress record as whole-record snapshots.
// The app loads the latest snapshot once at startup and saves after every
// mutation; writes are fire-and-forget, never transactional with the UI.
type ProgressRepo interface {
	// Save stores a new snapshot of the record.
	Save(ctx context.Context, rec progress.Record) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// PronunciationEventData captures one scored pronunciation attempt.
type PronunciationEventData struct {
	SessionID string
	Language  string
	WordID    string
	Accuracy  int
	Tier      string
	Passed    bool
}

// QuizEventData captures one completed quiz.
type QuizEventData struct {
	SessionID      string
	QuizType       string
	Language       string
	Category       string
	TotalQuestions int
	Score          int
	Accuracy       int
	BonusXP        int
}

// SessionEventData captures a learning-session start or end.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	Language     string
	WordsStudied int
	Attempts     int
	Correct      int
	DurationSecs int
}

// QuizSummary aggregates stored quiz history for the stats display.
type QuizSummary struct {
	Quizzes         int
	AverageAccuracy int
	BestAccuracy    int
}

// EventRepo provides append access to the practice history.
type EventRepo interface {
	AppendPronunciation(ctx context.Context, data PronunciationEventData) error
	AppendQuiz(ctx context.Context, data QuizEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error

	// QuizHistory summarizes stored quiz events, optionally since a time.
	QuizHistory(ctx context.Context, since time.Time) (QuizSummary, error)
}
