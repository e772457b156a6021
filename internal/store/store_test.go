package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/lingua/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestProgressSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot on empty store")
	}

	rec := progress.DefaultRecord("ta", time.Now())
	rec = progress.AddXP(rec, 120)
	rec, _ = progress.CompleteLesson(rec, "ta1")

	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot after save")
	}
	if snap.Record.XP != 120 || snap.Record.Level != 2 {
		t.Errorf("restored xp/level = %d/%d, want 120/2", snap.Record.XP, snap.Record.Level)
	}
	if len(snap.Record.CompletedLessons) != 1 || snap.Record.CompletedLessons[0] != "ta1" {
		t.Errorf("restored lessons = %v", snap.Record.CompletedLessons)
	}
	if snap.Record.CurrentLanguage != "ta" {
		t.Errorf("restored language = %q", snap.Record.CurrentLanguage)
	}
}

func TestProgressLatestWinsAfterMultipleSaves(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rec := progress.DefaultRecord("en", time.Now())
	for i := 0; i < 3; i++ {
		rec = progress.AddXP(rec, 50)
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap.Record.XP != 150 {
		t.Errorf("latest xp = %d, want 150", snap.Record.XP)
	}
}

func TestEventAppendAndQuizHistory(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendQuiz(ctx, QuizEventData{
		SessionID: "q-1", QuizType: "timed", Language: "hi", Category: "all",
		TotalQuestions: 10, Score: 8, Accuracy: 80, BonusXP: 50,
	})
	if err != nil {
		t.Fatalf("AppendQuiz: %v", err)
	}
	err = events.AppendQuiz(ctx, QuizEventData{
		SessionID: "q-2", QuizType: "quick", Language: "hi", Category: "animals",
		TotalQuestions: 5, Score: 3, Accuracy: 60, BonusXP: 25,
	})
	if err != nil {
		t.Fatalf("AppendQuiz: %v", err)
	}

	err = events.AppendPronunciation(ctx, PronunciationEventData{
		SessionID: "l-1", Language: "hi", WordID: "hi1", Accuracy: 88, Tier: "great", Passed: true,
	})
	if err != nil {
		t.Fatalf("AppendPronunciation: %v", err)
	}
	err = events.AppendSession(ctx, SessionEventData{
		SessionID: "l-1", Action: "start", Language: "hi",
	})
	if err != nil {
		t.Fatalf("AppendSession: %v", err)
	}

	summary, err := events.QuizHistory(ctx, time.Time{})
	if err != nil {
		t.Fatalf("QuizHistory: %v", err)
	}
	if summary.Quizzes != 2 {
		t.Errorf("Quizzes = %d, want 2", summary.Quizzes)
	}
	if summary.AverageAccuracy != 70 {
		t.Errorf("AverageAccuracy = %d, want 70", summary.AverageAccuracy)
	}
	if summary.BestAccuracy != 80 {
		t.Errorf("BestAccuracy = %d, want 80", summary.BestAccuracy)
	}
}
