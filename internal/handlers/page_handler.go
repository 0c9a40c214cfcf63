package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/friendsofchildren/backend/internal/models"
	"github.com/friendsofchildren/backend/internal/render"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PageRenderer writes server-rendered pages
type PageRenderer interface {
	Lessons(w io.Writer, page render.LessonsPage) error
}

// PageHandler serves the HTML lesson browsing page
type PageHandler struct {
	BaseHandler
	lessons  LessonService
	renderer PageRenderer
}

// NewPageHandler creates a new page handler
func NewPageHandler(lessons LessonService, renderer PageRenderer, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		BaseHandler: BaseHandler{logger: logger},
		lessons:     lessons,
		renderer:    renderer,
	}
}

// RegisterRoutes registers the page routes
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/lessons", h.Lessons)
}

// Lessons handles GET /lessons
//
// The search text is trimmed; it is lower-cased for matching while the search box keeps it as typed.
// A storage failure still renders the page, with an unavailable notice instead of cards.
func (h *PageHandler) Lessons(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("search"))
	category := r.URL.Query().Get("category")
	if category == "" {
		category = models.CategoryAll
	}

	var page render.LessonsPage
	lessons, err := h.lessons.List(r.Context(), strings.ToLower(query), category)
	if err != nil {
		h.logger.Warn("rendering lessons page without lessons", zap.Error(err))
		page = render.UnavailablePage(query, category)
	} else {
		page = render.NewLessonsPage(lessons, query, category)
	}

	var buf bytes.Buffer
	if err := h.renderer.Lessons(&buf, page); err != nil {
		h.logger.Error("failed to render lessons page", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
