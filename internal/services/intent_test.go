package services

import (
	"testing"

	"learnpath-backend/internal/config"
)

func newDefaultClassifier() *IntentClassifier {
	kw := config.DefaultKeywords()
	return NewIntentClassifier(kw.Casual, kw.Learning)
}

func TestIntentClassifier_IsLearningRequest(t *testing.T) {
	c := newDefaultClassifier()

	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"greeting overrides learning keyword", "hello, can you help me learn git?", false},
		{"thanks overrides tutorial", "Thanks for the tutorial", false},
		{"plain learning request", "how to learn Python basics", true},
		{"upper case is folded", "TUTORIAL ON DOCKER", true},
		{"multi-word keyword", "walk me through kubernetes", true},
		{"neither keyword set", "what is the weather today", false},
		{"empty message", "", false},
		{"substring greeting inside a word", "explain this concept", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.IsLearningRequest(tc.message); got != tc.want {
				t.Fatalf("IsLearningRequest(%q) = %v, want %v", tc.message, got, tc.want)
			}
		})
	}
}

func TestIntentClassifier_CustomKeywords(t *testing.T) {
	c := NewIntentClassifier([]string{"Yo"}, []string{"Drill"})

	if !c.IsLearningRequest("let's drill on verbs") {
		t.Fatalf("expected custom learning keyword to match")
	}
	if c.IsLearningRequest("yo, drill me") {
		t.Fatalf("expected custom greeting to win")
	}
	if c.IsLearningRequest("learn go") {
		t.Fatalf("default keywords should not apply to a custom classifier")
	}
}
