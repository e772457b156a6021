package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/abhisek/lingua/ent"
	"github.com/abhisek/lingua/ent/quizevent"
)

// sequenceCounter assigns a single increasing sequence number to every event
// regardless of type. Events live in per-type ent tables, so per-table
// auto-increment IDs cannot establish cross-type ordering; this shared
// counter can. Raw SQL because ent has no database-level atomic counter.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPronunciation(ctx context.Context, data PronunciationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PronunciationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLanguage(data.Language).
		SetWordID(data.WordID).
		SetAccuracy(data.Accuracy).
		SetTier(data.Tier).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save pronunciation event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuiz(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuizType(data.QuizType).
		SetLanguage(data.Language).
		SetCategory(data.Category).
		SetTotalQuestions(data.TotalQuestions).
		SetScore(data.Score).
		SetAccuracy(data.Accuracy).
		SetBonusXp(data.BonusXP).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetLanguage(data.Language).
		SetWordsStudied(data.WordsStudied).
		SetAttempts(data.Attempts).
		SetCorrect(data.Correct).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizHistory(ctx context.Context, since time.Time) (QuizSummary, error) {
	query := r.client.QuizEvent.Query()
	if !since.IsZero() {
		query = query.Where(quizevent.TimestampGTE(since))
	}

	events, err := query.All(ctx)
	if err != nil {
		return QuizSummary{}, fmt.Errorf("query quiz events: %w", err)
	}

	summary := QuizSummary{Quizzes: len(events)}
	if len(events) == 0 {
		return summary, nil
	}
	total := 0
	for _, e := range events {
		total += e.Accuracy
		if e.Accuracy > summary.BestAccuracy {
			summary.BestAccuracy = e.Accuracy
		}
	}
	summary.AverageAccuracy = int(math.Round(float64(total) / float64(len(events))))
	return summary, nil
}
