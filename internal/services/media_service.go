package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/friendsofchildren/backend/internal/models"
	"github.com/friendsofchildren/backend/internal/storage"
	"go.uber.org/zap"
)

// UploadURLPrefix is the public path uploaded files are served under
const UploadURLPrefix = "/uploads/"

// Storage defines the interface for file storage operations
type Storage interface {
	// Create creates a new file with the given stored name and returns a WriteCloser
	Create(name string) (io.WriteCloser, error)

	// Delete removes a file; a missing file yields an error satisfying os.IsNotExist
	Delete(name string) error
}

// MediaRepository defines the interface for media record access
type MediaRepository interface {
	List(ctx context.Context, mediaType string) ([]models.MediaAsset, error)
	GetByID(ctx context.Context, id int) (*models.MediaAsset, error)
	Create(ctx context.Context, asset *models.MediaAsset) (*models.MediaAsset, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
	"audio/mpeg":      true,
	"audio/mp3":       true,
	"audio/wav":       true,
	"audio/x-wav":     true,
	"audio/wave":      true,
	"audio/ogg":       true,
	"video/ogg":       true,
}

// MediaService handles business logic for media operations
type MediaService struct {
	repo    MediaRepository
	storage Storage
	maxSize int64
	logger  *zap.Logger
	now     func() time.Time
}

// NewMediaService creates a new media service accepting uploads up to maxSize bytes
func NewMediaService(repo MediaRepository, storage Storage, maxSize int64, logger *zap.Logger) *MediaService {
	return &MediaService{
		repo:    repo,
		storage: storage,
		maxSize: maxSize,
		logger:  logger,
		now:     time.Now,
	}
}

// List retrieves media records of the given type ("" or "all" for every type)
func (s *MediaService) List(ctx context.Context, mediaType string) ([]models.MediaAsset, error) {
	assets, err := s.repo.List(ctx, strings.TrimSpace(mediaType))
	if err != nil {
		s.logger.Error("failed to list media", zap.Error(err))
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return assets, nil
}

// GetByID retrieves a media record by its ID
func (s *MediaService) GetByID(ctx context.Context, id int) (*models.MediaAsset, error) {
	if id <= 0 {
		return nil, fmt.Errorf("media %d: %w", id, models.ErrNotFound)
	}
	return s.repo.GetByID(ctx, id)
}

// Upload validates the file, stores its bytes under a generated name and creates the media record
//
// originalName is the client file name, used for display and for the stored extension.
// contentType must be one of the accepted image, video or audio types.
func (s *MediaService) Upload(ctx context.Context, reader io.Reader, originalName, contentType string) (*models.MediaAsset, error) {
	originalName = filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	extension := strings.ToLower(filepath.Ext(originalName))
	if extension == "" {
		extension = s.InferExtensionFromContentType(contentType)
	}
	if !allowedExtensions[extension] || !allowedContentTypes[contentType] {
		return nil, fmt.Errorf("%w: only image, video, and audio files are allowed", models.ErrValidation)
	}

	filename := storage.GenerateFileName(extension)

	// Create SizeWriter to track bytes
	sizeWriter := storage.NewSizeWriter()
	// Read one byte past the limit so oversized files are detected without buffering them
	teeReader := io.TeeReader(io.LimitReader(reader, s.maxSize+1), sizeWriter)

	writeCloser, err := s.storage.Create(filename)
	if err != nil {
		s.logger.Error("failed to create upload file", zap.Error(err), zap.String("filename", filename))
		return nil, fmt.Errorf("%w: failed to create file: %w", models.ErrStorage, err)
	}

	_, err = io.Copy(writeCloser, teeReader)
	closeErr := writeCloser.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		s.removeFile(filename)
		s.logger.Error("failed to write upload file", zap.Error(err), zap.String("filename", filename))
		return nil, fmt.Errorf("%w: failed to write file: %w", models.ErrStorage, err)
	}

	if sizeWriter.Size() > s.maxSize {
		s.removeFile(filename)
		return nil, fmt.Errorf("%w: file exceeds the %s upload limit", models.ErrValidation, FormatSize(s.maxSize))
	}

	mediaType := MediaTypeFromContentType(contentType)
	asset, err := s.repo.Create(ctx, &models.MediaAsset{
		Name: originalName,
		Type: mediaType,
		Size: FormatSize(sizeWriter.Size()),
		Date: s.now().Format("Jan 2, 2006"),
		Icon: IconFor(mediaType),
		URL:  UploadURLPrefix + filename,
	})
	if err != nil {
		s.logger.Error("failed to create media record", zap.Error(err), zap.String("filename", filename))
		return nil, fmt.Errorf("failed to create media record: %w", err)
	}

	s.logger.Info("media uploaded",
		zap.Int("id", asset.ID),
		zap.String("filename", filename),
		zap.Int64("size", sizeWriter.Size()),
	)
	return asset, nil
}

// Delete removes the media record and, best effort, its stored bytes
//
// A stored file that is already gone is not an error.
func (s *MediaService) Delete(ctx context.Context, id int) error {
	asset, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if strings.HasPrefix(asset.URL, UploadURLPrefix) {
		s.removeFile(path.Base(asset.URL))
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete media record", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete media: %w", err)
	}
	if !deleted {
		return fmt.Errorf("media %d: %w", id, models.ErrNotFound)
	}

	s.logger.Info("media deleted", zap.Int("id", id))
	return nil
}

// removeFile deletes stored bytes, ignoring files that no longer exist
func (s *MediaService) removeFile(name string) {
	err := s.storage.Delete(name)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return
	}
	s.logger.Warn("failed to delete stored file", zap.Error(err), zap.String("filename", name))
}

// InferExtensionFromContentType infers the extension from the content type
//
// Returns the inferred extension, or empty string if the extension cannot be inferred.
func (s *MediaService) InferExtensionFromContentType(contentType string) string {
	contentTypeMap := map[string]string{
		"image/jpeg":      ".jpg",
		"image/png":       ".png",
		"image/gif":       ".gif",
		"image/webp":      ".webp",
		"audio/mpeg":      ".mp3",
		"audio/mp3":       ".mp3",
		"audio/wav":       ".wav",
		"audio/x-wav":     ".wav",
		"audio/wave":      ".wav",
		"audio/ogg":       ".ogg",
		"video/ogg":       ".ogg",
		"video/mp4":       ".mp4",
		"video/webm":      ".webm",
		"video/quicktime": ".mov",
	}

	if ext, ok := contentTypeMap[contentType]; ok {
		return ext
	}
	return ""
}

// MediaTypeFromContentType classifies a content type by its prefix
func MediaTypeFromContentType(contentType string) models.MediaType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaTypeImage
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaTypeVideo
	case strings.HasPrefix(contentType, "audio/"):
		return models.MediaTypeAudio
	default:
		return models.MediaTypeFile
	}
}

// IconFor returns the short label shown for a media type
func IconFor(mediaType models.MediaType) string {
	switch mediaType {
	case models.MediaTypeImage:
		return "IMG"
	case models.MediaTypeVideo:
		return "VID"
	case models.MediaTypeAudio:
		return "AUD"
	default:
		return "FILE"
	}
}

// FormatSize renders a byte count as "N B", "N.N KB" or "N.N MB"
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
