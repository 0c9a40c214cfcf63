package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/friendsofchildren/backend/internal/models"
	"go.uber.org/zap"
)

// LessonRepository is the interface that wraps methods for lesson store access
type LessonRepository interface {
	// Method List retrieve lessons matching the criteria in insertion order.
	//
	// Empty Search matches every lesson, Category "" or "all" matches every category.
	// The result is never nil; a storage failure is returned together with "nil" value.
	List(ctx context.Context, criteria models.LessonCriteria) ([]models.Lesson, error)
	// Method GetByID retrieve a lesson by its ID.
	//
	// If the lesson does not exist an error wrapping models.ErrNotFound is returned.
	GetByID(ctx context.Context, id int) (*models.Lesson, error)
	// Method Create assign the next id and timestamps, then persist the lesson.
	Create(ctx context.Context, lesson *models.Lesson) (*models.Lesson, error)
	// Method Update apply the patch over the stored lesson and refresh updatedAt.
	//
	// Please reference GetByID method for the not found error.
	Update(ctx context.Context, id int, patch *models.LessonPatch) (*models.Lesson, error)
	// Method Delete remove the lesson and report whether anything was removed.
	Delete(ctx context.Context, id int) (bool, error)
}

type lessonService struct {
	repo   LessonRepository
	logger *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(repo LessonRepository, logger *zap.Logger) *lessonService {
	return &lessonService{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves lessons filtered by a free-text search and a category selector.
// The search text is matched as given; callers decide whether to trim it.
func (s *lessonService) List(ctx context.Context, search, category string) ([]models.Lesson, error) {
	lessons, err := s.repo.List(ctx, models.LessonCriteria{
		Search:   search,
		Category: category,
	})
	if err != nil {
		s.logger.Error("failed to list lessons", zap.Error(err))
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	return lessons, nil
}

// GetByID retrieves a lesson by its ID
func (s *lessonService) GetByID(ctx context.Context, id int) (*models.Lesson, error) {
	if id <= 0 {
		return nil, fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
	}

	lesson, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return lesson, nil
}

// Create checks that the required fields are present and stores a new lesson
//
// title, scripture and category must not be blank; every other field is stored as given.
func (s *lessonService) Create(ctx context.Context, req *models.CreateLessonRequest) (*models.Lesson, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Scripture) == "" || strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: title, scripture, and category are required", models.ErrValidation)
	}

	lesson, err := s.repo.Create(ctx, req.ToLesson())
	if err != nil {
		s.logger.Error("failed to create lesson", zap.Error(err))
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	s.logger.Info("lesson created", zap.Int("id", lesson.ID), zap.String("title", lesson.Title))
	return lesson, nil
}

// Update applies a partial update to an existing lesson; present fields are stored as given
func (s *lessonService) Update(ctx context.Context, id int, patch *models.LessonPatch) (*models.Lesson, error) {
	if id <= 0 {
		return nil, fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
	}

	lesson, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("lesson updated", zap.Int("id", id))
	return lesson, nil
}

// Delete removes a lesson, returning models.ErrNotFound when it does not exist
func (s *lessonService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete lesson", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	if !deleted {
		return fmt.Errorf("lesson %d: %w", id, models.ErrNotFound)
	}

	s.logger.Info("lesson deleted", zap.Int("id", id))
	return nil
}
