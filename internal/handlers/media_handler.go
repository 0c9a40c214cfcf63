package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/friendsofchildren/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// multipartMemory is the part of a multipart upload kept in memory before spilling to temp files
const multipartMemory = 32 << 20

// MsgFileTooLarge answers uploads whose body exceeds the upload limit
const MsgFileTooLarge = "file is too large"

// MediaService is the interface that wraps methods for media business logic.
type MediaService interface {
	// Method List retrieve media records of a type; "" and "all" return every record.
	List(ctx context.Context, mediaType string) ([]models.MediaAsset, error)
	// Method GetByID retrieve a media record by its ID.
	GetByID(ctx context.Context, id int) (*models.MediaAsset, error)
	// Method Upload store the file bytes and create its media record.
	//
	// Disallowed or oversized files are rejected with an error wrapping models.ErrValidation before a record is written.
	Upload(ctx context.Context, reader io.Reader, originalName, contentType string) (*models.MediaAsset, error)
	// Method Delete remove the media record and its stored bytes when present.
	Delete(ctx context.Context, id int) error
}

// MediaHandler handles HTTP requests for media assets
type MediaHandler struct {
	BaseHandler
	service MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(svc MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all media handler routes
func (h *MediaHandler) RegisterRoutes(r chi.Router) {
	r.Route("/media", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Upload)
		r.Get("/{id}", h.GetByID)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /api/media
// @Summary List media
// @Tags media
// @Produce json
// @Param type query string false "Media type: image, video, audio, file or all"
// @Success 200 {array} models.MediaAsset
// @Failure 500 {object} map[string]string
// @Router /api/media [get]
func (h *MediaHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.service.List(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		h.logger.Error("failed to list media", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch media")
		return
	}

	h.respondJSON(w, http.StatusOK, assets)
}

// GetByID handles GET /api/media/{id}
// @Summary Get media by ID
// @Tags media
// @Produce json
// @Param id path int true "Media ID"
// @Success 200 {object} models.MediaAsset
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/media/{id} [get]
func (h *MediaHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	asset, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Media file not found", "Failed to fetch media")
		return
	}

	h.respondJSON(w, http.StatusOK, asset)
}

// Upload handles POST /api/media
// @Summary Upload media
// @Description Upload an image, video or audio file as multipart field "file"
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file"
// @Success 201 {object} models.MediaAsset
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/media [post]
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusBadRequest, MsgFileTooLarge)
			return
		}
		h.logger.Warn("failed to parse multipart form", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "failed to parse request")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	asset, err := h.service.Upload(r.Context(), file, fileHeader.Filename, contentType)
	if err != nil {
		h.respondServiceError(w, err, "Media file not found", "Failed to upload file")
		return
	}

	h.respondJSON(w, http.StatusCreated, asset)
}

// Delete handles DELETE /api/media/{id}
// @Summary Delete media
// @Tags media
// @Produce json
// @Param id path int true "Media ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/media/{id} [delete]
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, err, "Media file not found", "Failed to delete media")
		return
	}

	h.respondJSON(w, http.StatusOK, models.DeleteResponse{Message: "Media file deleted successfully", ID: id})
}
