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

// lessonRepository stores lessons in a collection that is read and written as a whole
type lessonRepository struct {
	mu     sync.Mutex
	store  collection[models.Lesson]
	logger *zap.Logger
	now    func() time.Time
}

// NewLessonJSONRepository creates a lesson repository backed by the JSON file at path
func NewLessonJSONRepository(path string, logger *zap.Logger) (*lessonRepository, error) {
	store, err := newFileCollection[models.Lesson](path, logger)
	if err != nil {
		return nil, err
	}

	return &lessonRepository{
		store:  store,
		logger: logger,
		now:    timestamp,
	}, nil
}

// NewLessonMemoryRepository creates a process-lifetime lesson repository pre-seeded with the given lessons.
// Seed lessons receive ids and timestamps as if they were created in order.
func NewLessonMemoryRepository(seed []models.Lesson, logger *zap.Logger) *lessonRepository {
	now := timestamp()
	records := make([]models.Lesson, 0, len(seed))
	for i, lesson := range seed {
		lesson.ID = i + 1
		lesson.CreatedAt = now
		lesson.UpdatedAt = now
		records = append(records, lesson)
	}

	return &lessonRepository{
		store:  newMemoryCollection(records),
		logger: logger,
		now:    timestamp,
	}
}

// List returns the lessons matching the criteria in insertion order
func (r *lessonRepository) List(ctx context.Context, criteria models.LessonCriteria) ([]models.Lesson, error) {
	r.mu.Lock()
	lessons := r.store.load()
	r.mu.Unlock()

	return filter.Lessons(lessons, criteria.Search, criteria.Category), nil
}

// GetByID returns the lesson with the given id or models.ErrNotFound
func (r *lessonRepository) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	r.mu.Lock()
	lessons := r.store.load()
	r.mu.Unlock()

	idx := slices.IndexFunc(lessons, func(l models.Lesson) bool { return l.ID == id })
	if idx == -1 {
		return nil, fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
	}

	lesson := lessons[idx]
	return &lesson, nil
}

// Create assigns the next id, stamps both timestamps, appends the lesson and persists the collection
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lessons := r.store.load()

	created := *lesson
	created.ID = nextID(lessons, lessonID)
	created.CreatedAt = r.now()
	created.UpdatedAt = created.CreatedAt

	if err := r.store.save(append(lessons, created)); err != nil {
		r.logger.Error("failed to persist created lesson", zap.Error(err))
		return nil, err
	}

	return &created, nil
}

// Update applies the patch over the stored lesson, keeps its id and refreshes updatedAt
func (r *lessonRepository) Update(ctx context.Context, id int, patch *models.LessonPatch) (*models.Lesson, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lessons := r.store.load()
	idx := slices.IndexFunc(lessons, func(l models.Lesson) bool { return l.ID == id })
	if idx == -1 {
		return nil, fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
	}

	updated := lessons[idx]
	patch.Apply(&updated)
	updated.ID = id
	updated.UpdatedAt = r.now()
	lessons[idx] = updated

	if err := r.store.save(lessons); err != nil {
		r.logger.Error("failed to persist updated lesson", zap.Error(err), zap.Int("id", id))
		return nil, err
	}

	return &updated, nil
}

// Delete removes the lesson and reports whether anything was removed.
// The collection is only persisted when a lesson was removed.
func (r *lessonRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lessons := r.store.load()
	remaining := slices.DeleteFunc(lessons, func(l models.Lesson) bool { return l.ID == id })
	if len(remaining) == len(lessons) {
		return false, nil
	}

	if err := r.store.save(remaining); err != nil {
		r.logger.Error("failed to persist lesson deletion", zap.Error(err), zap.Int("id", id))
		return false, err
	}

	return true, nil
}

func lessonID(l models.Lesson) int {
	return l.ID
}

func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
