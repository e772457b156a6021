package words

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportResult summarizes a custom word list import.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []string
}

// customFileName returns the overlay file for a language's custom words.
func customFileName(dataDir, code string) string {
	return filepath.Join(dataDir, "custom_"+code+".json")
}

// ImportXLSX reads a custom word list from a spreadsheet and stores it as a
// JSON overlay in dataDir. Expected columns (first sheet, header row
// skipped): word, translation, pronunciation, category, difficulty,
// example, example translation. Only word and translation are required.
func ImportXLSX(path, code, dataDir string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	result := &ImportResult{}
	var imported []Word
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		w, err := rowToWord(row, code, i)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		imported = append(imported, w)
		result.Imported++
	}

	if len(imported) > 0 {
		if err := writeCustom(code, dataDir, imported); err != nil {
			return nil, err
		}
		Merge(code, imported)
	}
	return result, nil
}

// LoadCustom merges previously imported overlay files into the registry.
// Missing or unreadable overlays are ignored.
func LoadCustom(dataDir string) {
	for _, code := range Languages() {
		raw, err := os.ReadFile(customFileName(dataDir, code))
		if err != nil {
			continue
		}
		var lf languageFile
		if err := json.Unmarshal(raw, &lf); err != nil {
			continue
		}
		Merge(code, lf.Words)
	}
}

func rowToWord(row []string, code string, n int) (Word, error) {
	col := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	word, translation := col(0), col(1)
	if word == "" || translation == "" {
		return Word{}, fmt.Errorf("word and translation are required")
	}

	difficulty := Difficulty(strings.ToLower(col(4)))
	switch difficulty {
	case Beginner, Intermediate, Advanced:
	case "":
		difficulty = Beginner
	default:
		return Word{}, fmt.Errorf("unknown difficulty %q", col(4))
	}

	category := strings.ToLower(col(3))
	if category == "" {
		category = "basics"
	}

	return Word{
		ID:                 fmt.Sprintf("%s_custom%d", code, n),
		Word:               word,
		Translation:        translation,
		Pronunciation:      col(2),
		Category:           category,
		Difficulty:         difficulty,
		Example:            col(5),
		ExampleTranslation: col(6),
	}, nil
}

func writeCustom(code, dataDir string, ws []Word) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	// Append to any existing overlay rather than clobbering it.
	existing := languageFile{Language: code}
	if raw, err := os.ReadFile(customFileName(dataDir, code)); err == nil {
		_ = json.Unmarshal(raw, &existing)
	}
	seen := make(map[string]bool, len(existing.Words))
	for _, w := range existing.Words {
		seen[w.ID] = true
	}
	for _, w := range ws {
		if !seen[w.ID] {
			existing.Words = append(existing.Words, w)
		}
	}

	out, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("encode custom words: %w", err)
	}
	if err := os.WriteFile(customFileName(dataDir, code), out, 0o644); err != nil {
		return fmt.Errorf("write custom words: %w", err)
	}
	return nil
}
