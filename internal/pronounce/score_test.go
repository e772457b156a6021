package pronounce

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"cat", "cat", 0},
		{"cat", "dog", 3},
		{"kitten", "sitting", 3},
		{"hello", "hallo", 1},
		{"", "abc", 3},
		{"நன்றி", "நன்றி", 0},
	}
	for _, tt := range tests {
		got := Levenshtein(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if rev := Levenshtein(tt.b, tt.a); rev != got {
			t.Errorf("Levenshtein not symmetric for %q/%q: %d vs %d", tt.a, tt.b, got, rev)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if s := Similarity("", ""); s != 1.0 {
		t.Errorf("Similarity of two empty strings = %v, want 1.0", s)
	}
	if s := Similarity("cat", "cat"); s != 1.0 {
		t.Errorf("Similarity(cat, cat) = %v, want 1.0", s)
	}
	if s := Similarity("cat", "dog"); s > 0.34 {
		t.Errorf("Similarity(cat, dog) = %v, want <= 0.34", s)
	}
	// Case and surrounding whitespace must not matter.
	if s := Similarity("  Namaste ", "namaste"); s != 1.0 {
		t.Errorf("Similarity ignoring case/space = %v, want 1.0", s)
	}
}

func TestAssessTiers(t *testing.T) {
	tests := []struct {
		spoken, target string
		tier           Tier
		passed         bool
	}{
		{"namaste", "namaste", TierGreat, true},
		{"namaster", "namaste", TierGreat, true},  // 7/8 -> 88
		{"nama", "namaste", TierGoodEffort, false}, // 4/7 -> 57
		{"xyz", "namaste", TierKeepPracticing, false},
	}
	for _, tt := range tests {
		score := Assess(tt.spoken, tt.target)
		if score.Tier != tt.tier {
			t.Errorf("Assess(%q, %q).Tier = %q (accuracy %d), want %q",
				tt.spoken, tt.target, score.Tier, score.Accuracy, tt.tier)
		}
		if score.Passed() != tt.passed {
			t.Errorf("Assess(%q, %q).Passed = %v, want %v", tt.spoken, tt.target, score.Passed(), tt.passed)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	if Classify(70) != TierGreat {
		t.Error("70 should classify as great")
	}
	if Classify(69) != TierGoodEffort {
		t.Error("69 should classify as good effort")
	}
	if Classify(50) != TierGoodEffort {
		t.Error("50 should classify as good effort")
	}
	if Classify(49) != TierKeepPracticing {
		t.Error("49 should classify as keep practicing")
	}
}

func TestFailureScore(t *testing.T) {
	s := FailureScore()
	if s.Accuracy != 0 || s.Passed() {
		t.Errorf("failure score should be zero accuracy, got %+v", s)
	}
	if s.Feedback == "" {
		t.Error("failure score needs a descriptive message")
	}
}

func TestSessionCounters(t *testing.T) {
	var s Session
	if s.Accuracy() != 0 {
		t.Errorf("empty session accuracy = %d, want 0", s.Accuracy())
	}

	s.Record(Score{Accuracy: 90})
	s.Record(Score{Accuracy: 40})
	s.Record(Score{Accuracy: 75})

	if s.Attempts != 3 || s.Correct != 2 {
		t.Errorf("attempts/correct = %d/%d, want 3/2", s.Attempts, s.Correct)
	}
	if s.Accuracy() != 67 {
		t.Errorf("session accuracy = %d, want 67", s.Accuracy())
	}
}
