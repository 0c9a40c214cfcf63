package models

import (
	"strings"
	"time"
)

// LessonStatus represents publication state of a lesson
type LessonStatus string

const (
	LessonStatusPublished LessonStatus = "published"
	LessonStatusDraft     LessonStatus = "draft"
)

// CategoryAll is the category selector that matches every lesson
const CategoryAll = "all"

// DefaultGradient is the card background used when a lesson has none
const DefaultGradient = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"

// Lesson represents a bible lesson plan
type Lesson struct {
	ID                  int          `json:"id"`
	Title               string       `json:"title"`
	Scripture           string       `json:"scripture"`
	Category            string       `json:"category"`
	Date                *string      `json:"date"`
	Duration            *Duration    `json:"duration" swaggertype:"string"`
	AgeGroup            *string      `json:"ageGroup"`
	Description         *string      `json:"description"`
	Overview            *string      `json:"overview"`
	Objectives          *string      `json:"objectives"`
	LessonContent       *string      `json:"lessonContent"`
	Materials           *string      `json:"materials"`
	DiscussionQuestions *string      `json:"discussionQuestions"`
	ArticleTitle        *string      `json:"articleTitle"`
	ArticleAuthor       *string      `json:"articleAuthor"`
	ArticleDate         *string      `json:"articleDate"`
	ArticleContent      *string      `json:"articleContent"`
	ArticleLink         *string      `json:"articleLink"`
	VideoURL            *string      `json:"videoUrl"`
	AudioURL            *string      `json:"audioUrl"`
	Status              LessonStatus `json:"status"`
	Link                *string      `json:"link"`
	Gradient            string       `json:"gradient"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// DescriptionText returns the description or an empty string
func (l *Lesson) DescriptionText() string {
	if l.Description == nil {
		return ""
	}
	return *l.Description
}

// CreateLessonRequest represents a request to create a lesson
type CreateLessonRequest struct {
	Title               string    `json:"title"`
	Scripture           string    `json:"scripture"`
	Category            string    `json:"category"`
	Date                string    `json:"date"`
	Duration            *Duration `json:"duration" swaggertype:"string"`
	AgeGroup            string    `json:"ageGroup"`
	Description         string    `json:"description"`
	Overview            string    `json:"overview"`
	Objectives          string    `json:"objectives"`
	LessonContent       string    `json:"lessonContent"`
	Materials           string    `json:"materials"`
	DiscussionQuestions string    `json:"discussionQuestions"`
	ArticleTitle        string    `json:"articleTitle"`
	ArticleAuthor       string    `json:"articleAuthor"`
	ArticleDate         string    `json:"articleDate"`
	ArticleContent      string    `json:"articleContent"`
	ArticleLink         string    `json:"articleLink"`
	VideoURL            string    `json:"videoUrl"`
	AudioURL            string    `json:"audioUrl"`
	Status              string    `json:"status"`
	Link                string    `json:"link"`
	Gradient            *string   `json:"gradient"`
}

// ToLesson builds a new lesson from the request.
// Empty optional fields are stored as null, status and gradient fall back to defaults.
func (r *CreateLessonRequest) ToLesson() *Lesson {
	lesson := &Lesson{
		Title:               r.Title,
		Scripture:           r.Scripture,
		Category:            r.Category,
		Date:                optional(r.Date),
		AgeGroup:            optional(r.AgeGroup),
		Description:         optional(r.Description),
		Overview:            optional(r.Overview),
		Objectives:          optional(r.Objectives),
		LessonContent:       optional(r.LessonContent),
		Materials:           optional(r.Materials),
		DiscussionQuestions: optional(r.DiscussionQuestions),
		ArticleTitle:        optional(r.ArticleTitle),
		ArticleAuthor:       optional(r.ArticleAuthor),
		ArticleDate:         optional(r.ArticleDate),
		ArticleContent:      optional(r.ArticleContent),
		ArticleLink:         optional(r.ArticleLink),
		VideoURL:            optional(r.VideoURL),
		AudioURL:            optional(r.AudioURL),
		Link:                optional(r.Link),
		Status:              LessonStatusPublished,
		Gradient:            DefaultGradient,
	}
	if r.Duration != nil && *r.Duration != "" {
		d := *r.Duration
		lesson.Duration = &d
	}
	if r.Status != "" {
		lesson.Status = LessonStatus(r.Status)
	}
	if r.Gradient != nil && strings.TrimSpace(*r.Gradient) != "" {
		lesson.Gradient = *r.Gradient
	}
	return lesson
}

// LessonPatch represents a partial lesson update.
// A nil field keeps the stored value; id and createdAt are not patchable.
type LessonPatch struct {
	Title               *string       `json:"title,omitempty"`
	Scripture           *string       `json:"scripture,omitempty"`
	Category            *string       `json:"category,omitempty"`
	Date                *string       `json:"date,omitempty"`
	Duration            *Duration     `json:"duration,omitempty" swaggertype:"string"`
	AgeGroup            *string       `json:"ageGroup,omitempty"`
	Description         *string       `json:"description,omitempty"`
	Overview            *string       `json:"overview,omitempty"`
	Objectives          *string       `json:"objectives,omitempty"`
	LessonContent       *string       `json:"lessonContent,omitempty"`
	Materials           *string       `json:"materials,omitempty"`
	DiscussionQuestions *string       `json:"discussionQuestions,omitempty"`
	ArticleTitle        *string       `json:"articleTitle,omitempty"`
	ArticleAuthor       *string       `json:"articleAuthor,omitempty"`
	ArticleDate         *string       `json:"articleDate,omitempty"`
	ArticleContent      *string       `json:"articleContent,omitempty"`
	ArticleLink         *string       `json:"articleLink,omitempty"`
	VideoURL            *string       `json:"videoUrl,omitempty"`
	AudioURL            *string       `json:"audioUrl,omitempty"`
	Status              *LessonStatus `json:"status,omitempty"`
	Link                *string       `json:"link,omitempty"`
	Gradient            *string       `json:"gradient,omitempty"`
}

// Apply copies every present field of the patch onto the lesson
func (p *LessonPatch) Apply(l *Lesson) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Scripture != nil {
		l.Scripture = *p.Scripture
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Gradient != nil {
		l.Gradient = *p.Gradient
	}
	if p.Duration != nil {
		d := *p.Duration
		l.Duration = &d
	}
	setOptional(&l.Date, p.Date)
	setOptional(&l.AgeGroup, p.AgeGroup)
	setOptional(&l.Description, p.Description)
	setOptional(&l.Overview, p.Overview)
	setOptional(&l.Objectives, p.Objectives)
	setOptional(&l.LessonContent, p.LessonContent)
	setOptional(&l.Materials, p.Materials)
	setOptional(&l.DiscussionQuestions, p.DiscussionQuestions)
	setOptional(&l.ArticleTitle, p.ArticleTitle)
	setOptional(&l.ArticleAuthor, p.ArticleAuthor)
	setOptional(&l.ArticleDate, p.ArticleDate)
	setOptional(&l.ArticleContent, p.ArticleContent)
	setOptional(&l.ArticleLink, p.ArticleLink)
	setOptional(&l.VideoURL, p.VideoURL)
	setOptional(&l.AudioURL, p.AudioURL)
	setOptional(&l.Link, p.Link)
}

// LessonCriteria narrows a lesson listing
type LessonCriteria struct {
	Search   string
	Category string
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func setOptional(dst **string, src *string) {
	if src == nil {
		return
	}
	v := *src
	*dst = &v
}
