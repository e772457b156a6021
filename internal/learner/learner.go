// Package learner owns the live progress record during a run of the app.
// It loads the latest snapshot at startup, applies progress mutations
// through the engine, and saves a new snapshot after every change.
package learner

import (
	"context"
	"log"
	"time"

	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/store"
)

// snapshotKeep is how many progress snapshots Prune retains.
const snapshotKeep = 50

// Tracker holds the current progress record and persists changes.
// It is used from the Bubble Tea update loop only, so it needs no locking.
type Tracker struct {
	repo   store.ProgressRepo
	record progress.Record
}

// Load restores the latest snapshot, or starts a fresh record when the
// store is empty. The streak is reconciled against today immediately so
// screens never see a stale streak.
func Load(ctx context.Context, repo store.ProgressRepo, language string, now time.Time) (*Tracker, error) {
	t := &Tracker{repo: repo}

	snap, err := repo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		t.record = progress.DefaultRecord(language, now)
	} else {
		t.record = snap.Record
	}

	t.record = progress.ReconcileStreak(t.record, now)
	t.persist(ctx)
	return t, nil
}

// Record returns the current progress record.
func (t *Tracker) Record() progress.Record {
	return t.record
}

// Reconcile advances the streak for activity happening now. It runs at
// the start of every learning and quiz session, so a run that crosses
// midnight still counts the new day.
func (t *Tracker) Reconcile(ctx context.Context, now time.Time) progress.Record {
	next := progress.ReconcileStreak(t.record, now)
	if next.LastActiveDate == t.record.LastActiveDate {
		return t.record
	}
	t.record = next
	t.persist(ctx)
	return t.record
}

// Apply merges a patch into the record and persists the result.
func (t *Tracker) Apply(ctx context.Context, p progress.Patch) progress.Record {
	t.record = progress.Apply(t.record, p)
	t.persist(ctx)
	return t.record
}

// AddXP awards experience, persisting the result. The returned record
// carries any level-up and achievement changes.
func (t *Tracker) AddXP(ctx context.Context, amount int) progress.Record {
	t.record = progress.AddXP(t.record, amount)
	t.persist(ctx)
	return t.record
}

// CompleteLesson marks a word's lesson complete, awarding lesson XP on
// first completion. It reports whether the lesson was newly completed.
func (t *Tracker) CompleteLesson(ctx context.Context, wordID string) (progress.Record, bool) {
	next, added := progress.CompleteLesson(t.record, wordID)
	if !added {
		return t.record, false
	}
	t.record = progress.AddXP(next, progress.LessonXP)
	t.persist(ctx)
	return t.record, true
}

// SetLanguage switches the active study language.
func (t *Tracker) SetLanguage(ctx context.Context, code string) progress.Record {
	if t.record.CurrentLanguage == code {
		return t.record
	}
	t.record.CurrentLanguage = code
	t.persist(ctx)
	return t.record
}

// Reset discards all progress, starting over in the current language.
func (t *Tracker) Reset(ctx context.Context, now time.Time) progress.Record {
	t.record = progress.DefaultRecord(t.record.CurrentLanguage, now)
	t.persist(ctx)
	return t.record
}

// persist writes a snapshot and prunes old ones. Persistence failures are
// logged, never surfaced: losing one snapshot must not interrupt study.
func (t *Tracker) persist(ctx context.Context) {
	if err := t.repo.Save(ctx, t.record); err != nil {
		log.Printf("save progress snapshot: %v", err)
		return
	}
	if err := t.repo.Prune(ctx, snapshotKeep); err != nil {
		log.Printf("prune progress snapshots: %v", err)
	}
}
