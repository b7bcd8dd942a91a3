package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"learnpath-backend/internal/logger"
	"learnpath-backend/internal/models"
	"learnpath-backend/internal/services"
)

type intentClassifier interface {
	IsLearningRequest(message string) bool
}

type linkAnnotator interface {
	Annotate(text string) []models.LinkAnnotation
}

type ChatHandler struct {
	generator  services.TextGenerator
	classifier intentClassifier
	links      linkAnnotator
	timeout    time.Duration
	log        *logger.Logger
}

func NewChatHandler(generator services.TextGenerator, classifier intentClassifier, links linkAnnotator, timeout time.Duration, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		generator:  generator,
		classifier: classifier,
		links:      links,
		timeout:    timeout,
		log:        log,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeBody(w, r, &req, func() string { return req.Message }); err != nil {
		msg := "Invalid request body"
		if errors.Is(err, errBlankField) {
			msg = "Message is required"
		}
		writeJSON(w, http.StatusBadRequest, errorResp(models.CodeInvalidRequest, msg, r))
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	text, err := h.generator.Generate(ctx, services.BuildChatPrompt(req.Message))
	if err != nil {
		h.log.Error("chat generation failed", "error", err, "request_id", requestID(r))
		writeJSON(w, http.StatusInternalServerError, errorResp(models.CodeAIError, "Failed to generate response", r))
		return
	}

	resp := models.ChatResponse{
		Response: text,
		Links:    h.links.Annotate(text),
	}
	if h.classifier.IsLearningRequest(req.Message) {
		query := req.Message
		resp.HasAgentButton = true
		resp.Query = &query
	}

	writeJSON(w, http.StatusOK, resp)
}
