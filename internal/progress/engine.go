package progress

import (
	"slices"
	"time"
)

// XPPerLevel is the XP span of a single level: level = xp/100 + 1.
const XPPerLevel = 100

// LessonXP is awarded the first time a word is completed in learning mode.
const LessonXP = 5

// levelAchievements maps level thresholds to achievement IDs, checked in
// order whenever AddXP raises the level.
var levelAchievements = []struct {
	Level int
	ID    string
}{
	{5, "level_5"},
	{10, "level_10"},
}

// Apply shallow-merges a patch onto a record. Fields the patch leaves nil are
// preserved unchanged. No invariants are checked here: Apply is a pure merge,
// callers are responsible for keeping derived values consistent.
func Apply(cur Record, p Patch) Record {
	next := cur
	if p.CurrentLanguage != nil {
		next.CurrentLanguage = *p.CurrentLanguage
	}
	if p.Level != nil {
		next.Level = *p.Level
	}
	if p.XP != nil {
		next.XP = *p.XP
	}
	if p.Streak != nil {
		next.Streak = *p.Streak
	}
	if p.LastActiveDate != nil {
		next.LastActiveDate = *p.LastActiveDate
	}
	if p.CompletedLessons != nil {
		next.CompletedLessons = p.CompletedLessons
	}
	if p.Achievements != nil {
		next.Achievements = p.Achievements
	}
	if p.Stats != nil {
		next.Stats = *p.Stats
	}
	return next
}

// AddXP awards experience and recomputes the level from the new total.
// Crossing an achievement level appends its ID exactly once.
// amount must be positive; this layer does not defend against misuse.
func AddXP(cur Record, amount int) Record {
	next := cur
	next.XP = cur.XP + amount
	next.Level = next.XP/XPPerLevel + 1

	if next.Level > cur.Level {
		for _, la := range levelAchievements {
			if next.Level == la.Level && !slices.Contains(next.Achievements, la.ID) {
				next.Achievements = append(slices.Clone(cur.Achievements), la.ID)
			}
		}
	}
	return next
}

// ReconcileStreak advances the activity date and streak counter for today.
// Called once at the start of every learning or quiz session.
//
//   - already active today: no change
//   - last active yesterday: streak continues, +1
//   - longer gap (or first run): streak resets to 0
func ReconcileStreak(cur Record, today time.Time) Record {
	d := Day(today)
	if cur.LastActiveDate == d {
		return cur
	}

	next := cur
	if cur.LastActiveDate == Day(today.AddDate(0, 0, -1)) {
		next.Streak = cur.Streak + 1
	} else {
		next.Streak = 0
	}
	next.LastActiveDate = d
	return next
}

// CompleteLesson records a word as learned. Returns the updated record and
// whether the word was newly completed (callers award LessonXP only then).
// The completed set never shrinks, and WordsLearned tracks its size.
func CompleteLesson(cur Record, wordID string) (Record, bool) {
	if slices.Contains(cur.CompletedLessons, wordID) {
		return cur, false
	}
	next := cur
	next.CompletedLessons = append(slices.Clone(cur.CompletedLessons), wordID)
	next.Stats.WordsLearned = len(next.CompletedLessons)
	return next, true
}

// NextLevelXP returns the XP total at which the next level is reached.
func NextLevelXP(level int) int {
	return level * XPPerLevel
}

// LevelProgress returns the fraction [0,1] of the way through the current level.
func LevelProgress(r Record) float64 {
	base := (r.Level - 1) * XPPerLevel
	span := NextLevelXP(r.Level) - base
	if span <= 0 {
		return 0
	}
	p := float64(r.XP-base) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// AchievementName returns a display label for an achievement ID.
func AchievementName(id string) string {
	switch id {
	case "level_5":
		return "Reached Level 5"
	case "level_10":
		return "Reached Level 10"
	default:
		return id
	}
}
