package words

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/*.json
var dataFS embed.FS

// languageFile is the on-disk shape of a word data file.
type languageFile struct {
	Language string `json:"language"`
	Words    []Word `json:"words"`
}

var (
	registryOnce sync.Once
	registry     map[string][]Word
)

// Languages lists the built-in language codes in display order.
func Languages() []string {
	return []string{"en", "hi", "ta"}
}

// LanguageName returns a display name for a language code.
func LanguageName(code string) string {
	switch code {
	case "en":
		return "English"
	case "hi":
		return "Hindi"
	case "ta":
		return "Tamil"
	default:
		return code
	}
}

// Categories returns the word categories in display order.
func Categories() []Category {
	return []Category{
		{ID: "basics", Name: "Basics", Icon: "👋"},
		{ID: "numbers", Name: "Numbers", Icon: "🔢"},
		{ID: "colors", Name: "Colors", Icon: "🎨"},
		{ID: "food", Name: "Food", Icon: "🍎"},
		{ID: "animals", Name: "Animals", Icon: "🐱"},
	}
}

// ForLanguage returns the word list for a language code, in data-file order.
// Unknown codes return an empty slice, never an error: the UI degrades to a
// "no words available" state.
func ForLanguage(code string) []Word {
	loadRegistry()
	return registry[code]
}

// ByCategory returns the words of one category for a language.
func ByCategory(code, categoryID string) []Word {
	if categoryID == AllCategories {
		return ForLanguage(code)
	}
	var out []Word
	for _, w := range ForLanguage(code) {
		if w.Category == categoryID {
			out = append(out, w)
		}
	}
	return out
}

// Merge adds extra words (e.g. an imported custom list) to a language.
// Duplicate IDs are skipped.
func Merge(code string, extra []Word) {
	loadRegistry()
	seen := make(map[string]bool, len(registry[code]))
	for _, w := range registry[code] {
		seen[w.ID] = true
	}
	for _, w := range extra {
		if !seen[w.ID] {
			registry[code] = append(registry[code], w)
			seen[w.ID] = true
		}
	}
}

// loadRegistry parses and validates the embedded data files once. The
// embedded tables ship with the binary, so a failure here is a build
// defect and panics.
func loadRegistry() {
	registryOnce.Do(func() {
		schema := compileSchema()
		registry = make(map[string][]Word)

		entries, err := dataFS.ReadDir("data")
		if err != nil {
			panic(fmt.Sprintf("words: read embedded data: %v", err))
		}
		var names []string
		for _, e := range entries {
			if e.Name() != "schema.json" {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			raw, err := dataFS.ReadFile("data/" + name)
			if err != nil {
				panic(fmt.Sprintf("words: read %s: %v", name, err))
			}
			var parsed any
			if err := json.Unmarshal(raw, &parsed); err != nil {
				panic(fmt.Sprintf("words: parse %s: %v", name, err))
			}
			if err := schema.Validate(parsed); err != nil {
				panic(fmt.Sprintf("words: %s fails schema: %v", name, err))
			}
			var lf languageFile
			if err := json.Unmarshal(raw, &lf); err != nil {
				panic(fmt.Sprintf("words: decode %s: %v", name, err))
			}
			registry[lf.Language] = lf.Words
		}
	})
}

func compileSchema() *jsonschema.Schema {
	raw, err := dataFS.ReadFile("data/schema.json")
	if err != nil {
		panic(fmt.Sprintf("words: read schema: %v", err))
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("words: parse schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://words.json", doc); err != nil {
		panic(fmt.Sprintf("words: add schema resource: %v", err))
	}
	schema, err := c.Compile("schema://words.json")
	if err != nil {
		panic(fmt.Sprintf("words: compile schema: %v", err))
	}
	return schema
}
