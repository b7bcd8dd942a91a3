package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsDurationOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal time.Duration
		expected   time.Duration
	}{
		{"parses duration", "TEST_DUR_1", "15s", time.Minute, 15 * time.Second},
		{"uses default for empty", "TEST_DUR_2", "", time.Minute, time.Minute},
		{"uses default for garbage", "TEST_DUR_3", "soon", time.Minute, time.Minute},
		{"uses default for negative", "TEST_DUR_4", "-5s", time.Minute, time.Minute},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsDurationOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, result)
			}
		})
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required env var")
		}
	}()

	os.Unsetenv("NONEXISTENT_REQUIRED_VAR")
	mustGetEnv("NONEXISTENT_REQUIRED_VAR")
}

func TestMustGetEnv_ReturnsValue(t *testing.T) {
	os.Setenv("TEST_REQUIRED", "value123")
	defer os.Unsetenv("TEST_REQUIRED")

	result := mustGetEnv("TEST_REQUIRED")
	if result != "value123" {
		t.Errorf("Expected 'value123', got %q", result)
	}
}

func TestLoad_GroqProviderRequiresGroqKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "GROQ")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := Load()
	if cfg.LLMProvider != ProviderGroq {
		t.Fatalf("expected provider %q, got %q", ProviderGroq, cfg.LLMProvider)
	}
	if cfg.GroqAPIKey != "gsk_test" {
		t.Fatalf("expected groq key to be loaded, got %q", cfg.GroqAPIKey)
	}
	if cfg.GroqModel != "llama-3.1-8b-instant" {
		t.Fatalf("unexpected default groq model %q", cfg.GroqModel)
	}
}

func TestLoad_UnknownProviderPanics(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "carrier-pigeon")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for unsupported provider")
		}
	}()
	Load()
}
