package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultKeywords(t *testing.T) {
	kw := DefaultKeywords()

	if kw.FallbackTopic != "programming" {
		t.Fatalf("expected fallback topic 'programming', got %q", kw.FallbackTopic)
	}
	if len(kw.Casual) == 0 || len(kw.Learning) == 0 || len(kw.Topics) == 0 {
		t.Fatalf("expected non-empty keyword sections, got %+v", kw)
	}

	// Topic order is the extractor's tie-break
	wantPrefix := []string{"git", "github", "python"}
	if diff := cmp.Diff(wantPrefix, kw.Topics[:3]); diff != "" {
		t.Fatalf("unexpected topic order (-want +got):\n%s", diff)
	}
}

func TestLoadKeywords_EmptyPathReturnsDefaults(t *testing.T) {
	kw, err := LoadKeywords("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(DefaultKeywords(), kw); diff != "" {
		t.Fatalf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadKeywords_OverridesOnlyPresentSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	body := "topics:\n  - Rust\n  - '  Go  '\nfallback_topic: coding\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	kw, err := LoadKeywords(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"rust", "go"}, kw.Topics); diff != "" {
		t.Fatalf("unexpected topics (-want +got):\n%s", diff)
	}
	if kw.FallbackTopic != "coding" {
		t.Fatalf("expected fallback 'coding', got %q", kw.FallbackTopic)
	}
	if diff := cmp.Diff(DefaultKeywords().Casual, kw.Casual); diff != "" {
		t.Fatalf("casual keywords should keep defaults (-want +got):\n%s", diff)
	}
}

func TestLoadKeywords_Errors(t *testing.T) {
	if _, err := LoadKeywords(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("topics: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadKeywords(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
