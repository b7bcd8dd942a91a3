package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnpath-backend/internal/config"
	"learnpath-backend/internal/handlers"
	"learnpath-backend/internal/logger"
	"learnpath-backend/internal/services"
)

type echoGenerator struct{}

func (echoGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "<p>ok</p>", nil
}

func newTestRouter() http.Handler {
	kw := config.DefaultKeywords()
	chat := handlers.NewChatHandler(
		echoGenerator{},
		services.NewIntentClassifier(kw.Casual, kw.Learning),
		services.NewLinkAnnotator(kw.LinkDomains),
		time.Second,
		logger.Nop(),
	)
	resources := handlers.NewResourceHandler(
		services.NewTopicExtractor(kw.Topics, kw.StopWords, kw.FallbackTopic),
		services.NewResourceAssembler(),
		logger.Nop(),
	)
	return New(chat, resources, nil, "http://localhost:3000")
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/chat", `{"message":"hi"}`, http.StatusOK},
		{http.MethodPost, "/api/chat", `{"message":"hi"}`, http.StatusOK},
		{http.MethodPost, "/resources", `{"query":"git"}`, http.StatusOK},
		{http.MethodPost, "/api/resources", `{"query":"git"}`, http.StatusOK},
		{http.MethodGet, "/chat", "", http.StatusMethodNotAllowed},
		{http.MethodPost, "/nope", "{}", http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("expected status %d, got %d", tc.want, rr.Code)
			}
			if rr.Header().Get("X-Request-ID") == "" {
				t.Fatalf("expected X-Request-ID on every response")
			}
		})
	}
}
