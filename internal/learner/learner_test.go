package learner

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/store"
)

// memRepo is an in-memory ProgressRepo for tests.
type memRepo struct {
	snapshots []store.Snapshot
	saveErr   error
}

func (m *memRepo) Save(_ context.Context, rec progress.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.snapshots = append(m.snapshots, store.Snapshot{
		ID:        len(m.snapshots) + 1,
		Timestamp: time.Now(),
		Record:    rec,
	})
	return nil
}

func (m *memRepo) Latest(context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	s := m.snapshots[len(m.snapshots)-1]
	return &s, nil
}

func (m *memRepo) Prune(context.Context, int) error { return nil }

func TestLoadFreshRecord(t *testing.T) {
	repo := &memRepo{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	tr, err := Load(context.Background(), repo, "ta", now)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rec := tr.Record()
	if rec.CurrentLanguage != "ta" || rec.Level != 1 || rec.XP != 0 {
		t.Errorf("fresh record = %+v", rec)
	}
	if rec.Streak != 0 {
		t.Errorf("fresh streak = %d, want 0", rec.Streak)
	}
	if len(repo.snapshots) == 0 {
		t.Error("Load should persist the reconciled record")
	}
}

func TestLoadContinuesStreak(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	rec := progress.DefaultRecord("hi", yesterday)
	rec.Streak = 3
	repo := &memRepo{}
	repo.Save(context.Background(), rec)

	tr, err := Load(context.Background(), repo, "hi", now)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := tr.Record()
	if got.Streak != 4 {
		t.Errorf("streak after continuation = %d, want 4", got.Streak)
	}
	if got.LastActiveDate != progress.Day(now) {
		t.Errorf("last active = %q, want today", got.LastActiveDate)
	}
}

func TestReconcileAcrossMidnight(t *testing.T) {
	day1 := time.Date(2026, 9, 1, 23, 50, 0, 0, time.UTC)
	day2 := day1.Add(20 * time.Minute)

	repo := &memRepo{}
	tr, err := Load(context.Background(), repo, "ta", day1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := len(repo.snapshots)

	// Same day: no change, nothing persisted.
	rec := tr.Reconcile(context.Background(), day1)
	if rec.Streak != 0 || len(repo.snapshots) != before {
		t.Errorf("same-day reconcile: streak=%d snapshots=%d", rec.Streak, len(repo.snapshots))
	}

	// A session starting after midnight continues the streak.
	rec = tr.Reconcile(context.Background(), day2)
	if rec.Streak != 1 {
		t.Errorf("streak after midnight = %d, want 1", rec.Streak)
	}
	if rec.LastActiveDate != progress.Day(day2) {
		t.Errorf("last active = %q, want %q", rec.LastActiveDate, progress.Day(day2))
	}
	if len(repo.snapshots) != before+1 {
		t.Error("crossing midnight should persist one snapshot")
	}
}

func TestAddXPPersists(t *testing.T) {
	repo := &memRepo{}
	tr, _ := Load(context.Background(), repo, "en", time.Now())
	before := len(repo.snapshots)

	rec := tr.AddXP(context.Background(), 120)
	if rec.XP != 120 || rec.Level != 2 {
		t.Errorf("after AddXP: xp=%d level=%d", rec.XP, rec.Level)
	}
	if len(repo.snapshots) != before+1 {
		t.Error("AddXP should persist one snapshot")
	}
}

func TestCompleteLessonAwardsOnce(t *testing.T) {
	repo := &memRepo{}
	tr, _ := Load(context.Background(), repo, "ta", time.Now())

	rec, added := tr.CompleteLesson(context.Background(), "ta1")
	if !added {
		t.Fatal("first completion should report added")
	}
	if rec.XP != progress.LessonXP {
		t.Errorf("xp after first completion = %d, want %d", rec.XP, progress.LessonXP)
	}
	if rec.Stats.WordsLearned != 1 {
		t.Errorf("words learned = %d, want 1", rec.Stats.WordsLearned)
	}

	rec, added = tr.CompleteLesson(context.Background(), "ta1")
	if added {
		t.Error("repeat completion should not report added")
	}
	if rec.XP != progress.LessonXP {
		t.Errorf("xp after repeat = %d, want unchanged %d", rec.XP, progress.LessonXP)
	}
}

func TestSetLanguageAndReset(t *testing.T) {
	repo := &memRepo{}
	tr, _ := Load(context.Background(), repo, "en", time.Now())

	tr.AddXP(context.Background(), 250)
	rec := tr.SetLanguage(context.Background(), "ta")
	if rec.CurrentLanguage != "ta" {
		t.Errorf("language = %q, want ta", rec.CurrentLanguage)
	}
	if rec.XP != 250 {
		t.Error("switching language must not touch XP")
	}

	rec = tr.Reset(context.Background(), time.Now())
	if rec.XP != 0 || rec.Level != 1 || len(rec.CompletedLessons) != 0 {
		t.Errorf("after reset = %+v", rec)
	}
	if rec.CurrentLanguage != "ta" {
		t.Error("reset should keep the current language")
	}
}

func TestPersistFailureDoesNotPanic(t *testing.T) {
	repo := &memRepo{}
	tr, _ := Load(context.Background(), repo, "en", time.Now())

	repo.saveErr = context.DeadlineExceeded
	rec := tr.AddXP(context.Background(), 10)
	if rec.XP != 10 {
		t.Error("in-memory record should update even when save fails")
	}
}
