package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultFallbackTopic = "programming"

// TopicExtractor pulls a single topic string out of a free-text query.
type TopicExtractor struct {
	topics    []string
	stopWords map[string]struct{}
	fallback  string
}

func NewTopicExtractor(topics, stopWords []string, fallback string) *TopicExtractor {
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	if strings.TrimSpace(fallback) == "" {
		fallback = defaultFallbackTopic
	}
	return &TopicExtractor{
		topics:    lowerAll(topics),
		stopWords: stop,
		fallback:  fallback,
	}
}

// Extract returns the first known topic contained in query (list order, not
// longest match), else the first significant word, else the fallback. The
// result is never empty.
func (e *TopicExtractor) Extract(query string) string {
	lower := strings.ToLower(query)

	for _, topic := range e.topics {
		if topic != "" && strings.Contains(lower, topic) {
			return topic
		}
	}

	for _, word := range strings.Fields(lower) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		if _, stop := e.stopWords[word]; stop {
			continue
		}
		return word
	}

	return e.fallback
}
