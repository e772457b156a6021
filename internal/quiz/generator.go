package quiz

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/abhisek/lingua/internal/words"
)

// maxDistractors caps the incorrect options per question.
const maxDistractors = 3

// Generate builds up to count questions from the word pool, optionally
// filtered by category. Words are sampled without replacement, so no word
// appears twice in one quiz and the result is capped at the pool size.
// The rand source is injected for reproducible tests.
func Generate(pool []words.Word, categoryID string, count int, rng *rand.Rand) []Question {
	remaining := slices.Clone(pool)
	if categoryID != words.AllCategories {
		remaining = remaining[:0]
		for _, w := range pool {
			if w.Category == categoryID {
				remaining = append(remaining, w)
			}
		}
	}

	n := min(count, len(remaining))
	questions := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		idx := rng.Intn(len(remaining))
		word := remaining[idx]
		remaining = slices.Delete(remaining, idx, idx+1)

		kind := allKinds[rng.Intn(len(allKinds))]
		questions = append(questions, buildQuestion(word, remaining, kind, rng))
	}
	return questions
}

func buildQuestion(word words.Word, others []words.Word, kind Kind, rng *rand.Rand) Question {
	var prompt, correct string
	pick := func(w words.Word) string { return w.Word }

	switch kind {
	case KindTranslation:
		prompt = fmt.Sprintf("What does %q mean?", word.Word)
		correct = word.Translation
		pick = func(w words.Word) string { return w.Translation }
	case KindAudio:
		prompt = "Which word sounds like this? (press a to play)"
		correct = word.Word
	default: // KindMultipleChoice
		prompt = fmt.Sprintf("Which word means %q?", word.Translation)
		correct = word.Word
	}

	options := []string{correct}
	for _, other := range others {
		if len(options) > maxDistractors {
			break
		}
		candidate := pick(other)
		if candidate != correct && !slices.Contains(options, candidate) {
			options = append(options, candidate)
		}
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		ID:           fmt.Sprintf("%s_%s", kind, word.ID),
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: slices.Index(options, correct),
		Word:         word,
		Kind:         kind,
	}
}
