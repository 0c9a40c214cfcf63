package repositories

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/friendsofchildren/backend/internal/filter"
	"github.com/friendsofchildren/backend/internal/models"
	"go.uber.org/zap"
)

// mediaRepository stores media asset records in a collection that is read and written as a whole
type mediaRepository struct {
	mu     sync.Mutex
	store  collection[models.MediaAsset]
	logger *zap.Logger
	now    func() time.Time
}

// NewMediaJSONRepository creates a media repository backed by the JSON file at path
func NewMediaJSONRepository(path string, logger *zap.Logger) (*mediaRepository, error) {
	store, err := newFileCollection[models.MediaAsset](path, logger)
	if err != nil {
		return nil, err
	}

	return &mediaRepository{
		store:  store,
		logger: logger,
		now:    timestamp,
	}, nil
}

// NewMediaMemoryRepository creates a process-lifetime media repository
func NewMediaMemoryRepository(logger *zap.Logger) *mediaRepository {
	return &mediaRepository{
		store:  newMemoryCollection[models.MediaAsset](nil),
		logger: logger,
		now:    timestamp,
	}
}

// List returns the media assets of the given type ("" or "all" for every type)
func (r *mediaRepository) List(ctx context.Context, mediaType string) ([]models.MediaAsset, error) {
	r.mu.Lock()
	assets := r.store.load()
	r.mu.Unlock()

	return filter.Media(assets, mediaType), nil
}

// GetByID returns the media asset with the given id or models.ErrNotFound
func (r *mediaRepository) GetByID(ctx context.Context, id int) (*models.MediaAsset, error) {
	r.mu.Lock()
	assets := r.store.load()
	r.mu.Unlock()

	idx := slices.IndexFunc(assets, func(m models.MediaAsset) bool { return m.ID == id })
	if idx == -1 {
		return nil, fmt.Errorf("media %d: %w", id, models.ErrNotFound)
	}

	asset := assets[idx]
	return &asset, nil
}

// Create assigns the next id and creation time, appends the record and persists the collection
func (r *mediaRepository) Create(ctx context.Context, asset *models.MediaAsset) (*models.MediaAsset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assets := r.store.load()

	created := *asset
	created.ID = nextID(assets, func(m models.MediaAsset) int { return m.ID })
	created.CreatedAt = r.now()

	if err := r.store.save(append(assets, created)); err != nil {
		r.logger.Error("failed to persist created media", zap.Error(err))
		return nil, err
	}

	return &created, nil
}

// Delete removes the record and reports whether anything was removed
func (r *mediaRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assets := r.store.load()
	remaining := slices.DeleteFunc(assets, func(m models.MediaAsset) bool { return m.ID == id })
	if len(remaining) == len(assets) {
		return false, nil
	}

	if err := r.store.save(remaining); err != nil {
		r.logger.Error("failed to persist media deletion", zap.Error(err), zap.Int("id", id))
		return false, err
	}

	return true, nil
}
