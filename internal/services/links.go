package services

import (
	"sort"
	"strings"

	"learnpath-backend/internal/models"
)

// LinkAnnotator finds learning-platform domains mentioned in generated text
// so clients can render them as source chips without re-parsing HTML.
type LinkAnnotator struct {
	domains []string
}

func NewLinkAnnotator(domains []string) *LinkAnnotator {
	return &LinkAnnotator{domains: lowerAll(domains)}
}

// Annotate returns every occurrence of a known domain, ordered by byte
// offset. Overlapping hits keep the earliest, longest one.
func (a *LinkAnnotator) Annotate(text string) []models.LinkAnnotation {
	links := []models.LinkAnnotation{}

	for _, domain := range a.domains {
		if domain == "" {
			continue
		}
		for start := 0; ; {
			idx := strings.Index(text[start:], domain)
			if idx < 0 {
				break
			}
			offset := start + idx
			links = append(links, models.LinkAnnotation{
				Offset: offset,
				Domain: domain,
				URL:    "https://" + domain,
			})
			start = offset + len(domain)
		}
	}

	sort.SliceStable(links, func(i, j int) bool {
		if links[i].Offset != links[j].Offset {
			return links[i].Offset < links[j].Offset
		}
		return len(links[i].Domain) > len(links[j].Domain)
	})

	// Drop hits that start inside an earlier one
	out := links[:0]
	end := -1
	for _, l := range links {
		if l.Offset < end {
			continue
		}
		out = append(out, l)
		end = l.Offset + len(l.Domain)
	}
	return out
}
