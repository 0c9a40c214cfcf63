package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/friendsofchildren/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for lesson business logic.
type LessonService interface {
	// Method List retrieve lessons matching a free-text search and a category selector.
	//
	// "search" matches title, scripture, description and category case-insensitively; empty matches everything.
	// "category" must equal the lesson category exactly; "" and "all" match every category.
	List(ctx context.Context, search, category string) ([]models.Lesson, error)
	// Method GetByID retrieve a lesson by its ID.
	//
	// An error wrapping models.ErrNotFound is returned when the lesson does not exist.
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// Method Create validate and store a new lesson.
	//
	// An error wrapping models.ErrValidation is returned when title, scripture or category is missing.
	Create(ctx context.Context, req *models.CreateLessonRequest) (*models.Lesson, error)
	// Method Update apply a partial update to a lesson. The path id always wins over any id in the body.
	Update(ctx context.Context, id int, patch *models.LessonPatch) (*models.Lesson, error)
	// Method Delete remove a lesson.
	Delete(ctx context.Context, id int) error
}

// LessonHandler handles HTTP requests for lessons
type LessonHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/lessons
// @Summary List lessons
// @Description Get lessons filtered by search text and category
// @Tags lessons
// @Produce json
// @Param search query string false "Case-insensitive text matched against title, scripture, description and category"
// @Param category query string false "Category (creation, faith, parables) or all"
// @Success 200 {array} models.Lesson
// @Failure 500 {object} map[string]string
// @Router /api/lessons [get]
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	lessons, err := h.service.List(r.Context(), search, category)
	if err != nil {
		h.logger.Error("failed to list lessons", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch lessons")
		return
	}

	h.respondJSON(w, http.StatusOK, lessons)
}

// GetByID handles GET /api/lessons/{id}
// @Summary Get lesson by ID
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/lessons/{id} [get]
func (h *LessonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	lesson, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Lesson not found", "Failed to fetch lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// Create handles POST /api/lessons
// @Summary Create lesson
// @Description Create a lesson; title, scripture and category are required
// @Tags lessons
// @Accept json
// @Produce json
// @Param lesson body models.CreateLessonRequest true "Lesson"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/lessons [post]
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "Lesson not found", "Failed to create lesson")
		return
	}

	h.respondJSON(w, http.StatusCreated, lesson)
}

// Update handles PUT /api/lessons/{id}
// @Summary Update lesson
// @Description Partially update a lesson; absent fields keep their stored values
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param lesson body models.LessonPatch true "Fields to change"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/lessons/{id} [put]
func (h *LessonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	var patch models.LessonPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lesson, err := h.service.Update(r.Context(), id, &patch)
	if err != nil {
		h.respondServiceError(w, err, "Lesson not found", "Failed to update lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// Delete handles DELETE /api/lessons/{id}
// @Summary Delete lesson
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/lessons/{id} [delete]
func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err, "Lesson not found", "Failed to delete lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, models.DeleteResponse{Message: "Lesson deleted successfully", ID: id})
}
