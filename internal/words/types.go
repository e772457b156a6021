package words

// Difficulty grades a word for display and filtering.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Word is an immutable vocabulary entry. The word tables are reference data:
// nothing in the app ever mutates them.
type Word struct {
	ID                 string     `json:"id"`
	Word               string     `json:"word"`
	Translation        string     `json:"translation"`
	Pronunciation      string     `json:"pronunciation,omitempty"`
	Category           string     `json:"category"`
	Difficulty         Difficulty `json:"difficulty"`
	Example            string     `json:"example,omitempty"`
	ExampleTranslation string     `json:"example_translation,omitempty"`
}

// Category groups words for browsing and quiz filtering.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// AllCategories is the category id used to mean "no filter".
const AllCategories = "all"
