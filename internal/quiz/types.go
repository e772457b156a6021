package quiz

import "github.com/abhisek/lingua/internal/words"

// Kind identifies how a question is asked.
type Kind string

const (
	// KindTranslation asks what a word means.
	KindTranslation Kind = "translation"

	// KindAudio plays the word and asks which one it was.
	KindAudio Kind = "audio"

	// KindMultipleChoice asks which word matches a translation.
	KindMultipleChoice Kind = "multiple_choice"
)

// allKinds is the pool a question kind is drawn from.
var allKinds = []Kind{KindTranslation, KindAudio, KindMultipleChoice}

// Question is one generated multiple-choice question. Questions are built at
// quiz start and discarded at quiz end; they are never persisted.
type Question struct {
	ID           string
	Prompt       string
	Options      []string // 2-4 candidates, exactly one correct
	CorrectIndex int
	Word         words.Word
	Kind         Kind
}

// CorrectAnswer returns the text of the correct option.
func (q Question) CorrectAnswer() string {
	return q.Options[q.CorrectIndex]
}
