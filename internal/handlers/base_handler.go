package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/friendsofchildren/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError maps a service error to a status code.
// Validation messages are returned to the client, storage details are only logged.
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, notFoundMessage, failureMessage string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, models.ErrValidation):
		h.respondError(w, http.StatusBadRequest, validationMessage(err))
	default:
		h.logger.Error(failureMessage, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, failureMessage)
	}
}

// parseID reads the {id} URL parameter as an integer
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// validationMessage strips the sentinel prefix from a wrapped validation error
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), models.ErrValidation.Error()+": ")
}
