package services

import "strings"

// IntentClassifier decides whether a chat message asks for learning material.
// Matching is plain substring containment on the lower-cased message, so
// "hi" also matches inside "this". Greetings always win.
type IntentClassifier struct {
	casual   []string
	learning []string
}

func NewIntentClassifier(casual, learning []string) *IntentClassifier {
	return &IntentClassifier{
		casual:   lowerAll(casual),
		learning: lowerAll(learning),
	}
}

// IsLearningRequest reports whether message reads as a learning request.
func (c *IntentClassifier) IsLearningRequest(message string) bool {
	lower := strings.ToLower(message)

	// Greetings short-circuit
	if containsAny(lower, c.casual) {
		return false
	}

	return containsAny(lower, c.learning)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
