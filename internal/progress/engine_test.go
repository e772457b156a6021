package progress

import (
	"slices"
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAddXPLevelsUp(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-01"))
	r.XP = 95
	r.Level = 1

	next := AddXP(r, 10)

	if next.XP != 105 {
		t.Errorf("XP = %d, want 105", next.XP)
	}
	if next.Level != 2 {
		t.Errorf("Level = %d, want 2", next.Level)
	}
	if len(next.Achievements) != 0 {
		t.Errorf("Achievements = %v, want none below level 5", next.Achievements)
	}
}

func TestAddXPMonotonic(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-01"))
	for i := 0; i < 50; i++ {
		next := AddXP(r, 7)
		if next.XP < r.XP || next.Level < r.Level {
			t.Fatalf("XP/Level regressed: %d/%d -> %d/%d", r.XP, r.Level, next.XP, next.Level)
		}
		if next.Level != next.XP/XPPerLevel+1 {
			t.Fatalf("Level %d not derived from XP %d", next.Level, next.XP)
		}
		r = next
	}
}

func TestAddXPLevelFiveAchievementOnce(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-01"))
	r.XP = 395
	r.Level = 4

	next := AddXP(r, 10) // crosses 400 -> level 5
	if next.Level != 5 {
		t.Fatalf("Level = %d, want 5", next.Level)
	}
	if !slices.Contains(next.Achievements, "level_5") {
		t.Fatal("level_5 achievement not added")
	}

	// Repeated awards must not duplicate it.
	next = AddXP(next, 10)
	next = AddXP(next, 100)
	count := 0
	for _, a := range next.Achievements {
		if a == "level_5" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("level_5 appears %d times, want 1", count)
	}
}

func TestAddXPDoesNotMutateInput(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-01"))
	r.XP = 395
	r.Level = 4
	r.Achievements = []string{"level_5"}

	_ = AddXP(r, 600) // would cross level 10
	if len(r.Achievements) != 1 {
		t.Errorf("input record mutated: %v", r.Achievements)
	}
}

func TestApplyPreservesUnnamedFields(t *testing.T) {
	r := DefaultRecord("ta", date("2025-06-01"))
	r.XP = 120
	r.Level = 2
	r.Stats = Stats{WordsLearned: 3, QuizzesCompleted: 1, PronunciationAccuracy: 80}

	lang := "hi"
	next := Apply(r, Patch{CurrentLanguage: &lang})

	if next.CurrentLanguage != "hi" {
		t.Errorf("CurrentLanguage = %q, want hi", next.CurrentLanguage)
	}
	if next.XP != 120 || next.Level != 2 {
		t.Errorf("unpatched fields changed: xp=%d level=%d", next.XP, next.Level)
	}
	if next.Stats != r.Stats {
		t.Errorf("Stats changed without a patch: %+v", next.Stats)
	}
}

func TestApplyReplacesStatsWhole(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-01"))
	r.Stats = Stats{WordsLearned: 9, QuizzesCompleted: 4}

	next := Apply(r, Patch{Stats: &Stats{QuizzesCompleted: 5}})

	// Shallow merge: the caller is expected to carry nested counters forward.
	if next.Stats.WordsLearned != 0 {
		t.Errorf("WordsLearned = %d, want 0 (stats replaced whole)", next.Stats.WordsLearned)
	}
	if next.Stats.QuizzesCompleted != 5 {
		t.Errorf("QuizzesCompleted = %d, want 5", next.Stats.QuizzesCompleted)
	}
}

func TestReconcileStreakSameDay(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-10"))
	r.Streak = 3

	next := ReconcileStreak(r, date("2025-06-10"))
	if next.Streak != 3 || next.LastActiveDate != "2025-06-10" {
		t.Errorf("same-day reconcile changed state: %+v", next)
	}
}

func TestReconcileStreakContinuation(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-10"))
	r.Streak = 3

	next := ReconcileStreak(r, date("2025-06-11"))
	if next.Streak != 4 {
		t.Errorf("Streak = %d, want 4 on day-over-day continuation", next.Streak)
	}
	if next.LastActiveDate != "2025-06-11" {
		t.Errorf("LastActiveDate = %q, want 2025-06-11", next.LastActiveDate)
	}
}

func TestReconcileStreakGapResets(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-10"))
	r.Streak = 7

	next := ReconcileStreak(r, date("2025-06-12")) // two days later
	if next.Streak != 0 {
		t.Errorf("Streak = %d, want 0 after a gap", next.Streak)
	}
	if next.LastActiveDate != "2025-06-12" {
		t.Errorf("LastActiveDate = %q, want 2025-06-12", next.LastActiveDate)
	}
}

func TestCompleteLesson(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-01"))

	next, added := CompleteLesson(r, "en1")
	if !added {
		t.Fatal("first completion not reported as new")
	}
	if next.Stats.WordsLearned != 1 || len(next.CompletedLessons) != 1 {
		t.Errorf("WordsLearned=%d lessons=%d, want 1/1", next.Stats.WordsLearned, len(next.CompletedLessons))
	}

	again, added := CompleteLesson(next, "en1")
	if added {
		t.Error("repeat completion reported as new")
	}
	if len(again.CompletedLessons) != 1 {
		t.Errorf("completed set grew on repeat: %v", again.CompletedLessons)
	}

	more, _ := CompleteLesson(again, "en2")
	if more.Stats.WordsLearned != len(more.CompletedLessons) {
		t.Errorf("WordsLearned=%d out of sync with %d lessons",
			more.Stats.WordsLearned, len(more.CompletedLessons))
	}
}

func TestLevelProgress(t *testing.T) {
	r := DefaultRecord("en", date("2025-06-01"))
	r.XP = 150
	r.Level = 2

	if p := LevelProgress(r); p != 0.5 {
		t.Errorf("LevelProgress = %v, want 0.5", p)
	}
}
