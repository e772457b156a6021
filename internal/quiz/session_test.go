package quiz

import (
	"math/rand"
	"testing"

	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/words"
)

func newTestSession(t *testing.T, quizType Type, count int) *Session {
	t.Helper()
	pool := []words.Word{
		{ID: "w1", Word: "ek", Translation: "One", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w2", Word: "do", Translation: "Two", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w3", Word: "teen", Translation: "Three", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w4", Word: "char", Translation: "Four", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w5", Word: "paanch", Translation: "Five", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w6", Word: "chhe", Translation: "Six", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w7", Word: "saat", Translation: "Seven", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w8", Word: "aath", Translation: "Eight", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w9", Word: "nau", Translation: "Nine", Category: "numbers", Difficulty: words.Beginner},
		{ID: "w10", Word: "das", Translation: "Ten", Category: "numbers", Difficulty: words.Beginner},
	}
	qs := Generate(pool, words.AllCategories, count, rand.New(rand.NewSource(11)))
	if len(qs) != count {
		t.Fatalf("generated %d questions, want %d", len(qs), count)
	}
	return NewSession(quizType, qs)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestSession(t, TypeQuick, 5)
	if s.State() != NotStarted {
		t.Fatal("new session should be NotStarted")
	}
	if s.Current() != nil {
		t.Fatal("Current should be nil before Start")
	}

	s.Start()
	if s.State() != InProgress {
		t.Fatal("Start should move to InProgress")
	}

	for s.Current() != nil {
		s.Answer(TimeUpIndex)
		s.Advance()
	}
	if s.State() != Completed {
		t.Fatalf("state = %v after last question, want Completed", s.State())
	}
}

func TestSessionEmptyPoolNeverStarts(t *testing.T) {
	s := NewSession(TypeQuick, nil)
	s.Start()
	if s.State() != NotStarted {
		t.Error("session with no questions must not start")
	}
}

func TestAnswerScoringAndXP(t *testing.T) {
	s := newTestSession(t, TypeChallenge, 3)
	s.Start()

	q := s.Current()
	res := s.Answer(q.CorrectIndex)
	if !res.Correct || res.XP != 20 {
		t.Errorf("correct challenge answer: correct=%v xp=%d, want true/20", res.Correct, res.XP)
	}
	s.Advance()

	q = s.Current()
	wrong := (q.CorrectIndex + 1) % len(q.Options)
	res = s.Answer(wrong)
	if res.Correct || res.XP != 0 {
		t.Errorf("wrong answer: correct=%v xp=%d, want false/0", res.Correct, res.XP)
	}
	s.Advance()

	res = s.Answer(TimeUpIndex)
	if res.Correct {
		t.Error("time-up sentinel must count as incorrect")
	}
	if s.Score() != 1 {
		t.Errorf("score = %d, want 1", s.Score())
	}
}

func TestPerQuestionXPByType(t *testing.T) {
	wants := map[Type]int{TypeQuick: 10, TypeTimed: 15, TypeChallenge: 20}
	for quizType, want := range wants {
		if got := ConfigFor(quizType).QuestionXP; got != want {
			t.Errorf("%s question XP = %d, want %d", quizType, got, want)
		}
	}
}

func TestFinishEightOfTen(t *testing.T) {
	s := newTestSession(t, TypeTimed, 10)
	s.Start()

	answered := 0
	for q := s.Current(); q != nil; q = s.Current() {
		if answered < 8 {
			s.Answer(q.CorrectIndex)
		} else {
			s.Answer(TimeUpIndex)
		}
		answered++
		s.Advance()
	}

	c := s.Finish()
	if c.Accuracy != 80 {
		t.Fatalf("accuracy = %d, want 80", c.Accuracy)
	}
	if c.BonusXP != BonusHighXP {
		t.Errorf("bonus = %d, want %d at 80%% accuracy", c.BonusXP, BonusHighXP)
	}

	prev := progress.Stats{QuizzesCompleted: 2, PronunciationAccuracy: 70}
	stats := c.StatsPatch(prev)
	if stats.QuizzesCompleted != 3 {
		t.Errorf("QuizzesCompleted = %d, want 3", stats.QuizzesCompleted)
	}
	if stats.PronunciationAccuracy != 75 { // round((70+80)/2)
		t.Errorf("PronunciationAccuracy = %d, want 75", stats.PronunciationAccuracy)
	}
}

func TestFinishBonusTiers(t *testing.T) {
	run := func(correct, total int) Completion {
		s := newTestSession(t, TypeQuick, 5)
		s.Questions = s.Questions[:total]
		s.Start()
		i := 0
		for q := s.Current(); q != nil; q = s.Current() {
			if i < correct {
				s.Answer(q.CorrectIndex)
			} else {
				s.Answer(TimeUpIndex)
			}
			i++
			s.Advance()
		}
		return s.Finish()
	}

	if c := run(3, 5); c.Accuracy != 60 || c.BonusXP != BonusMidXP {
		t.Errorf("3/5: accuracy=%d bonus=%d, want 60/%d", c.Accuracy, c.BonusXP, BonusMidXP)
	}
	if c := run(2, 5); c.Accuracy != 40 || c.BonusXP != 0 {
		t.Errorf("2/5: accuracy=%d bonus=%d, want 40/0", c.Accuracy, c.BonusXP)
	}
}
