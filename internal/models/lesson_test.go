package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateLessonRequest_ToLesson(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		empty := Duration("")
		blank := "   "
		req := &CreateLessonRequest{
			Title:     "The Lost Sheep",
			Scripture: "Luke 15:1-7",
			Category:  "parables",
			Duration:  &empty,
			Gradient:  &blank,
		}

		lesson := req.ToLesson()

		assert.Equal(t, "The Lost Sheep", lesson.Title)
		assert.Equal(t, LessonStatusPublished, lesson.Status)
		assert.Equal(t, DefaultGradient, lesson.Gradient)
		assert.Nil(t, lesson.Duration)
		assert.Nil(t, lesson.Description)
		assert.Nil(t, lesson.Link)
		assert.Equal(t, "", lesson.DescriptionText())
	})

	t.Run("provided values", func(t *testing.T) {
		duration := Duration("30")
		gradient := "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)"
		req := &CreateLessonRequest{
			Title:       "Daniel",
			Scripture:   "Daniel 6",
			Category:    "faith",
			Duration:    &duration,
			Description: "Courage in prayer",
			Status:      "draft",
			Gradient:    &gradient,
		}

		lesson := req.ToLesson()
		duration = "99"

		assert.Equal(t, LessonStatusDraft, lesson.Status)
		assert.Equal(t, gradient, lesson.Gradient)
		assert.Equal(t, Duration("30"), *lesson.Duration)
		assert.Equal(t, "Courage in prayer", lesson.DescriptionText())
	})

	t.Run("status outside the known values is kept", func(t *testing.T) {
		req := &CreateLessonRequest{Title: "Ruth", Scripture: "Ruth 1", Category: "faith", Status: "archived"}

		assert.Equal(t, LessonStatus("archived"), req.ToLesson().Status)
	})
}

func TestLessonPatch_Apply(t *testing.T) {
	description := "Original"
	duration := Duration("45")
	lesson := &Lesson{
		ID:          3,
		Title:       "Noah's Ark",
		Scripture:   "Genesis 6-9",
		Category:    "faith",
		Description: &description,
		Duration:    &duration,
		Status:      LessonStatusPublished,
		Gradient:    DefaultGradient,
	}

	title := "Noah and the Flood"
	status := LessonStatusDraft
	newDescription := "Updated"
	patch := &LessonPatch{
		Title:       &title,
		Status:      &status,
		Description: &newDescription,
	}
	patch.Apply(lesson)
	newDescription = "mutated after apply"

	assert.Equal(t, 3, lesson.ID)
	assert.Equal(t, "Noah and the Flood", lesson.Title)
	assert.Equal(t, "Genesis 6-9", lesson.Scripture)
	assert.Equal(t, LessonStatusDraft, lesson.Status)
	assert.Equal(t, "Updated", *lesson.Description)
	assert.Equal(t, Duration("45"), *lesson.Duration)
	assert.Equal(t, DefaultGradient, lesson.Gradient)
	assert.Nil(t, lesson.Link)
}
