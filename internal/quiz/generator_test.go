package quiz

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/abhisek/lingua/internal/words"
)

func testPool() []words.Word {
	return []words.Word{
		{ID: "w1", Word: "billi", Translation: "Cat", Category: "animals", Difficulty: words.Beginner},
		{ID: "w2", Word: "kutta", Translation: "Dog", Category: "animals", Difficulty: words.Beginner},
		{ID: "w3", Word: "paani", Translation: "Water", Category: "food", Difficulty: words.Beginner},
		{ID: "w4", Word: "roti", Translation: "Bread", Category: "food", Difficulty: words.Beginner},
		{ID: "w5", Word: "laal", Translation: "Red", Category: "colors", Difficulty: words.Beginner},
	}
}

func TestGenerateCapsAtPoolSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	qs := Generate(testPool(), words.AllCategories, 10, rng)
	if len(qs) != 5 {
		t.Fatalf("generated %d questions from a pool of 5, want 5", len(qs))
	}
}

func TestGenerateNoRepeatedWords(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		qs := Generate(testPool(), words.AllCategories, 5, rng)
		seen := make(map[string]bool)
		for _, q := range qs {
			if seen[q.Word.ID] {
				t.Fatalf("seed %d: word %s appears twice", seed, q.Word.ID)
			}
			seen[q.Word.ID] = true
		}
	}
}

func TestGenerateCorrectIndexPointsAtAnswer(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, q := range Generate(testPool(), words.AllCategories, 5, rng) {
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Fatalf("seed %d: correct index %d out of range for %d options",
					seed, q.CorrectIndex, len(q.Options))
			}
			want := q.Word.Translation
			if q.Kind != KindTranslation {
				want = q.Word.Word
			}
			if q.CorrectAnswer() != want {
				t.Fatalf("seed %d: %s question for %s has correct answer %q, want %q",
					seed, q.Kind, q.Word.ID, q.CorrectAnswer(), want)
			}
		}
	}
}

func TestGenerateOptionsAreDistinct(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, q := range Generate(testPool(), words.AllCategories, 5, rng) {
			if len(q.Options) > 4 {
				t.Fatalf("question has %d options, want at most 4", len(q.Options))
			}
			for i, a := range q.Options {
				if slices.Contains(q.Options[i+1:], a) {
					t.Fatalf("duplicate option %q in %v", a, q.Options)
				}
			}
		}
	}
}

func TestGenerateCategoryFilter(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	qs := Generate(testPool(), "animals", 10, rng)
	if len(qs) != 2 {
		t.Fatalf("generated %d animal questions, want 2", len(qs))
	}
	for _, q := range qs {
		if q.Word.Category != "animals" {
			t.Errorf("question for %s outside filtered category", q.Word.ID)
		}
	}
}

func TestGenerateSmallPoolShortensOptions(t *testing.T) {
	pool := testPool()[:2]
	rng := rand.New(rand.NewSource(7))
	qs := Generate(pool, words.AllCategories, 2, rng)
	if len(qs) != 2 {
		t.Fatalf("generated %d questions, want 2", len(qs))
	}
	// First question has one distractor available, the last has none left.
	if got := len(qs[0].Options); got != 2 {
		t.Errorf("first question has %d options, want 2", got)
	}
	if got := len(qs[1].Options); got != 1 {
		t.Errorf("last question has %d options, want 1 (pool exhausted)", got)
	}
}

func TestGenerateExcludesEqualTranslations(t *testing.T) {
	pool := []words.Word{
		{ID: "a", Word: "namaste", Translation: "Hello", Category: "basics", Difficulty: words.Beginner},
		{ID: "b", Word: "vanakkam", Translation: "Hello", Category: "basics", Difficulty: words.Beginner},
		{ID: "c", Word: "alvida", Translation: "Goodbye", Category: "basics", Difficulty: words.Beginner},
	}
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, q := range Generate(pool, words.AllCategories, 3, rng) {
			if q.Kind != KindTranslation {
				continue
			}
			count := 0
			for _, o := range q.Options {
				if o == q.Word.Translation {
					count++
				}
			}
			if count != 1 {
				t.Fatalf("seed %d: correct translation appears %d times in %v", seed, count, q.Options)
			}
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(testPool(), words.AllCategories, 5, rand.New(rand.NewSource(42)))
	b := Generate(testPool(), words.AllCategories, 5, rand.New(rand.NewSource(42)))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || !slices.Equal(a[i].Options, b[i].Options) {
			t.Fatalf("question %d differs between identical seeds", i)
		}
	}
}
