package handlers

import (
	"context"
	"errors"
	"net/http"

	"learnpath-backend/internal/logger"
	"learnpath-backend/internal/models"
)

type topicExtractor interface {
	Extract(query string) string
}

type resourceAssembler interface {
	Assemble(ctx context.Context, topic string) (*models.ResourceBundle, error)
}

type ResourceHandler struct {
	extractor topicExtractor
	assembler resourceAssembler
	log       *logger.Logger
}

func NewResourceHandler(extractor topicExtractor, assembler resourceAssembler, log *logger.Logger) *ResourceHandler {
	return &ResourceHandler{
		extractor: extractor,
		assembler: assembler,
		log:       log,
	}
}

func (h *ResourceHandler) Resources(w http.ResponseWriter, r *http.Request) {
	var req models.ResourceRequest
	if err := decodeBody(w, r, &req, func() string { return req.Query }); err != nil {
		msg := "Invalid request body"
		if errors.Is(err, errBlankField) {
			msg = "Query is required"
		}
		writeJSON(w, http.StatusBadRequest, errorResp(models.CodeInvalidRequest, msg, r))
		return
	}

	topic := h.extractor.Extract(req.Query)

	bundle, err := h.assembler.Assemble(r.Context(), topic)
	if err != nil {
		h.log.Error("resource assembly failed", "error", err, "topic", topic, "request_id", requestID(r))
		writeJSON(w, http.StatusInternalServerError, errorResp(models.CodeInternalError, "Failed to generate resources", r))
		return
	}

	writeJSON(w, http.StatusOK, bundle)
}
