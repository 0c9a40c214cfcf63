package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version is reported by the API index
const Version = "1.0.0"

// HealthHandler serves liveness and API index endpoints
type HealthHandler struct {
	BaseHandler
	now func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: BaseHandler{logger: logger},
		now:         time.Now,
	}
}

// RegisterRoutes registers the health route under the API router
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health handles GET /api/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"message":   "Church API Server is running",
		"timestamp": h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

// Index handles GET /
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "Friends of Children Ministries API Server",
		"version": Version,
		"endpoints": map[string]string{
			"health":  "/api/health",
			"lessons": "/api/lessons",
			"media":   "/api/media",
			"page":    "/lessons",
			"docs":    "/swagger/index.html",
		},
	})
}

// NotFound answers unknown routes
func (h *HealthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, http.StatusNotFound, "Endpoint not found")
}
