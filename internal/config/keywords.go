package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// Keywords is the ordered keyword catalog that drives intent classification,
// topic extraction and link annotation.
type Keywords struct {
	Casual        []string `yaml:"casual"`
	Learning      []string `yaml:"learning"`
	Topics        []string `yaml:"topics"`
	StopWords     []string `yaml:"stopwords"`
	FallbackTopic string   `yaml:"fallback_topic"`
	LinkDomains   []string `yaml:"link_domains"`
}

// DefaultKeywords returns the embedded catalog.
func DefaultKeywords() *Keywords {
	kw, err := parseKeywords(defaultKeywordsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded keywords.yaml is invalid: %v", err))
	}
	return kw
}

// LoadKeywords reads a catalog from path. Sections missing from the file
// keep their embedded defaults. An empty path returns the defaults.
func LoadKeywords(path string) (*Keywords, error) {
	if path == "" {
		return DefaultKeywords(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file: %w", err)
	}

	override, err := parseKeywords(data)
	if err != nil {
		return nil, err
	}

	kw := DefaultKeywords()
	if len(override.Casual) > 0 {
		kw.Casual = override.Casual
	}
	if len(override.Learning) > 0 {
		kw.Learning = override.Learning
	}
	if len(override.Topics) > 0 {
		kw.Topics = override.Topics
	}
	if len(override.StopWords) > 0 {
		kw.StopWords = override.StopWords
	}
	if override.FallbackTopic != "" {
		kw.FallbackTopic = override.FallbackTopic
	}
	if len(override.LinkDomains) > 0 {
		kw.LinkDomains = override.LinkDomains
	}
	return kw, nil
}

func parseKeywords(data []byte) (*Keywords, error) {
	var kw Keywords
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return nil, fmt.Errorf("failed to parse keywords: %w", err)
	}

	kw.Casual = normalizeList(kw.Casual)
	kw.Learning = normalizeList(kw.Learning)
	kw.Topics = normalizeList(kw.Topics)
	kw.StopWords = normalizeList(kw.StopWords)
	kw.LinkDomains = normalizeList(kw.LinkDomains)
	kw.FallbackTopic = strings.TrimSpace(kw.FallbackTopic)
	return &kw, nil
}

// normalizeList lower-cases entries and drops blanks, keeping order.
func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
