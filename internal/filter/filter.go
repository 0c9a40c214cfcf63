// Package filter narrows lesson and media collections by category and free-text query
package filter

import (
	"strings"

	"github.com/friendsofchildren/backend/internal/models"
)

// Lessons returns the lessons matching both the category selector and the search query.
//
// An empty or "all" category matches every lesson, otherwise the category must be equal (case-sensitive).
// An empty query matches every lesson, otherwise the lower-cased query must be a substring of
// title, scripture, description or category. Input order is preserved.
func Lessons(lessons []models.Lesson, query, category string) []models.Lesson {
	query = strings.ToLower(query)

	result := make([]models.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if matchesCategory(lesson.Category, category) && matchesQuery(&lesson, query) {
			result = append(result, lesson)
		}
	}
	return result
}

// Media returns the media assets of the given type, or all of them for an empty or "all" type
func Media(assets []models.MediaAsset, mediaType string) []models.MediaAsset {
	result := make([]models.MediaAsset, 0, len(assets))
	for _, asset := range assets {
		if matchesCategory(string(asset.Type), mediaType) {
			result = append(result, asset)
		}
	}
	return result
}

func matchesCategory(value, selector string) bool {
	return selector == "" || selector == models.CategoryAll || value == selector
}

// matchesQuery expects an already lower-cased query
func matchesQuery(lesson *models.Lesson, query string) bool {
	if query == "" {
		return true
	}
	for _, field := range []string{lesson.Title, lesson.Scripture, lesson.DescriptionText(), lesson.Category} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
