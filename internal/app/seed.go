package app

import (
	"context"
	"fmt"

	"github.com/friendsofchildren/backend/internal/models"
	"github.com/friendsofchildren/backend/internal/seed"
)

// SeedResult reports how many records were inserted per store
type SeedResult struct {
	Lessons int
	Media   int
}

// Seed inserts the demo lessons and media records into stores that are empty.
// A store holding any record is left untouched.
func Seed(ctx context.Context, stores *Stores) (SeedResult, error) {
	var result SeedResult

	lessons, err := stores.Lessons.List(ctx, models.LessonCriteria{})
	if err != nil {
		return result, fmt.Errorf("failed to list lessons: %w", err)
	}
	if len(lessons) == 0 {
		for _, lesson := range seed.Lessons() {
			if _, err := stores.Lessons.Create(ctx, &lesson); err != nil {
				return result, fmt.Errorf("failed to seed lesson %q: %w", lesson.Title, err)
			}
			result.Lessons++
		}
	}

	media, err := stores.Media.List(ctx, "")
	if err != nil {
		return result, fmt.Errorf("failed to list media: %w", err)
	}
	if len(media) == 0 {
		for _, asset := range seed.Media() {
			if _, err := stores.Media.Create(ctx, &asset); err != nil {
				return result, fmt.Errorf("failed to seed media %q: %w", asset.Name, err)
			}
			result.Media++
		}
	}

	return result, nil
}
