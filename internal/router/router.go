package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"learnpath-backend/internal/handlers"
	"learnpath-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	resourceHandler *handlers.ResourceHandler,
	rateLimit func(http.Handler) http.Handler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", handlers.Health)

	assistant := func(r chi.Router) {
		if rateLimit != nil {
			r.Use(rateLimit)
		}
		r.Post("/chat", chatHandler.Chat)
		r.Post("/resources", resourceHandler.Resources)
	}

	// Served at the root and under /api, where the web client calls them
	r.Group(assistant)
	r.Route("/api", assistant)

	return r
}
