package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Language model
	LLMProvider string
	LLMTimeout  time.Duration

	// Gemini AI
	GeminiAPIKey         string
	GeminiModel          string
	GeminiConcurrentReqs int

	// Groq (OpenAI-compatible)
	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	// Redis (optional, shares rate-limit counters across replicas)
	RedisURL string

	// Rate limiting
	RateLimitPerMin int

	// Keyword catalog override
	KeywordsFile string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		LLMProvider:          strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderGemini)),
		LLMTimeout:           getEnvAsDurationOrDefault("LLM_TIMEOUT", 60*time.Second),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-3-flash-preview"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		GroqModel:            getEnvOrDefault("GROQ_MODEL", "llama-3.1-8b-instant"),
		GroqBaseURL:          getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		RedisURL:             getEnvOrDefault("REDIS_URL", ""),
		RateLimitPerMin:      getEnvAsIntOrDefault("RATE_LIMIT_PER_MIN", 30),
		KeywordsFile:         getEnvOrDefault("KEYWORDS_FILE", ""),
		FrontendURL:          getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	// Only the selected provider's key is required
	switch cfg.LLMProvider {
	case ProviderGroq:
		cfg.GroqAPIKey = mustGetEnv("GROQ_API_KEY")
	case ProviderGemini:
		cfg.GeminiAPIKey = mustGetEnv("GEMINI_API_KEY")
	default:
		panic(fmt.Sprintf("unsupported LLM_PROVIDER %q (want %q or %q)", cfg.LLMProvider, ProviderGemini, ProviderGroq))
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
