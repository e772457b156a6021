package words

import "testing"

func TestForLanguage(t *testing.T) {
	for _, code := range Languages() {
		ws := ForLanguage(code)
		if len(ws) == 0 {
			t.Errorf("no words for %s", code)
		}
		seen := make(map[string]bool)
		for _, w := range ws {
			if w.ID == "" || w.Word == "" || w.Translation == "" {
				t.Errorf("%s: incomplete word %+v", code, w)
			}
			if seen[w.ID] {
				t.Errorf("%s: duplicate id %s", code, w.ID)
			}
			seen[w.ID] = true
		}
	}
}

func TestForLanguageStableOrder(t *testing.T) {
	first := ForLanguage("hi")
	second := ForLanguage("hi")
	if len(first) != len(second) {
		t.Fatalf("length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("order changed at %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}
}

func TestForLanguageUnknown(t *testing.T) {
	if ws := ForLanguage("xx"); len(ws) != 0 {
		t.Errorf("unknown language returned %d words", len(ws))
	}
}

func TestByCategory(t *testing.T) {
	animals := ByCategory("ta", "animals")
	if len(animals) == 0 {
		t.Fatal("no tamil animal words")
	}
	for _, w := range animals {
		if w.Category != "animals" {
			t.Errorf("word %s has category %s", w.ID, w.Category)
		}
	}

	all := ByCategory("ta", AllCategories)
	if len(all) != len(ForLanguage("ta")) {
		t.Errorf("category %q returned %d words, want full list %d",
			AllCategories, len(all), len(ForLanguage("ta")))
	}
}

func TestCategoriesCoverData(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range Categories() {
		known[c.ID] = true
	}
	for _, code := range Languages() {
		for _, w := range ForLanguage(code) {
			if !known[w.Category] {
				t.Errorf("%s: word %s has unlisted category %s", code, w.ID, w.Category)
			}
		}
	}
}

func TestMergeSkipsDuplicates(t *testing.T) {
	before := len(ForLanguage("en"))
	Merge("en", []Word{
		{ID: "en1", Word: "Hello", Translation: "Hello", Category: "basics", Difficulty: Beginner},
		{ID: "en_extra1", Word: "Tree", Translation: "Tree", Category: "basics", Difficulty: Beginner},
	})
	after := len(ForLanguage("en"))
	if after != before+1 {
		t.Errorf("merge added %d words, want 1", after-before)
	}
}
