package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"learnpath-backend/internal/middleware"
	"learnpath-backend/internal/models"
)

const maxBodyBytes = 64 << 10

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestID(r),
	}
}

func requestID(r *http.Request) string {
	if id := middleware.GetRequestID(r.Context()); id != "" {
		return id
	}
	return r.Header.Get(middleware.RequestIDHeader)
}

var (
	errBlankField   = errors.New("blank field")
	errTrailingData = errors.New("unexpected data after JSON body")
)

// decodeBody decodes a JSON body into dst and checks that field is not blank.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, field func() string) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	if strings.TrimSpace(field()) == "" {
		return errBlankField
	}
	return nil
}

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
