package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnpath-backend/internal/config"
	"learnpath-backend/internal/database"
	"learnpath-backend/internal/handlers"
	"learnpath-backend/internal/logger"
	"learnpath-backend/internal/middleware"
	"learnpath-backend/internal/router"
	"learnpath-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("starting learnpath backend", "env", cfg.Env, "provider", cfg.LLMProvider)

	// ──── Step 2: Load Keyword Catalog ────
	keywords, err := config.LoadKeywords(cfg.KeywordsFile)
	if err != nil {
		log.Fatal("keyword catalog failed to load", "error", err, "path", cfg.KeywordsFile)
	}
	log.Info("keyword catalog loaded",
		"topics", len(keywords.Topics),
		"learning_keywords", len(keywords.Learning),
		"casual_keywords", len(keywords.Casual),
	)

	// ──── Step 3: Initialize Language Model Client ────
	var generator services.TextGenerator
	switch cfg.LLMProvider {
	case config.ProviderGroq:
		generator = services.NewGroqService(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel, cfg.LLMTimeout)
		log.Info("groq client initialized", "model", cfg.GroqModel)
	default:
		gemini, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiConcurrentReqs, log)
		if err != nil {
			log.Fatal("gemini client initialization failed", "error", err)
		}
		defer gemini.Close()
		generator = gemini
		log.Info("gemini client initialized", "model", cfg.GeminiModel)
	}

	// ──── Step 4: Initialize Rate Limiter ────
	var limiter middleware.Limiter
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("redis connection failed", "error", err)
		}
		defer redisClient.Close()
		limiter = middleware.NewRedisRateLimiter(redisClient, cfg.RateLimitPerMin, time.Minute)
		log.Info("redis rate limiter enabled", "per_minute", cfg.RateLimitPerMin)
	} else {
		memLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMin, time.Minute)
		defer memLimiter.Stop()
		limiter = memLimiter
		log.Info("in-memory rate limiter enabled", "per_minute", cfg.RateLimitPerMin)
	}

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(
		generator,
		services.NewIntentClassifier(keywords.Casual, keywords.Learning),
		services.NewLinkAnnotator(keywords.LinkDomains),
		cfg.LLMTimeout,
		log,
	)
	resourceHandler := handlers.NewResourceHandler(
		services.NewTopicExtractor(keywords.Topics, keywords.StopWords, keywords.FallbackTopic),
		services.NewResourceAssembler(),
		log,
	)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		chatHandler,
		resourceHandler,
		middleware.RateLimit(limiter, log),
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	idle := make(chan struct{})
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		close(idle)
	}()

	log.Info("learnpath backend ready",
		"addr", fmt.Sprintf("http://localhost:%s", cfg.Port),
		"frontend", cfg.FrontendURL,
	)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal("server error", "error", err)
	}
	<-idle
}
