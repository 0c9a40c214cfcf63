// Package render builds the server-side lesson browsing page
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/friendsofchildren/backend/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var categoryNames = map[string]string{
	"creation": "Creation",
	"faith":    "Faith & Purpose",
	"parables": "Parables",
}

// filterTabs are the category selectors offered on the page, in display order
var filterTabs = []string{models.CategoryAll, "creation", "faith", "parables"}

var safeGradient = regexp.MustCompile(`^(linear|radial)-gradient\([0-9A-Za-z#%.,\s()-]+\)$`)

// Tab is a category filter link
type Tab struct {
	Label  string
	Href   string
	Active bool
}

// Card is a lesson prepared for display with search matches highlighted
type Card struct {
	Title        template.HTML
	Scripture    template.HTML
	Description  template.HTML
	Category     string
	CategoryName string
	Date         string
	Link         string
	Gradient     template.CSS
	Draft        bool
	Delay        string
}

// LessonsPage is the data rendered by the lessons template
type LessonsPage struct {
	Query       string
	Category    string
	Tabs        []Tab
	Cards       []Card
	Summary     string
	Unavailable bool
}

// Renderer executes the embedded page templates
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Lessons writes the lessons page
func (r *Renderer) Lessons(w io.Writer, page LessonsPage) error {
	return r.templates.ExecuteTemplate(w, "lessons.tmpl", page)
}

// NewLessonsPage prepares cards, tabs and the results summary for the matching lessons.
// query is echoed back as typed; highlighting and the summary use its lower-cased form.
func NewLessonsPage(lessons []models.Lesson, query, category string) LessonsPage {
	if category == "" {
		category = models.CategoryAll
	}
	term := strings.ToLower(query)

	cards := make([]Card, 0, len(lessons))
	for i := range lessons {
		cards = append(cards, newCard(&lessons[i], term, i))
	}

	return LessonsPage{
		Query:    query,
		Category: category,
		Tabs:     tabs(query, category),
		Cards:    cards,
		Summary:  Summary(len(lessons), term, category),
	}
}

// UnavailablePage is shown when lessons could not be loaded
func UnavailablePage(query, category string) LessonsPage {
	page := NewLessonsPage(nil, query, category)
	page.Unavailable = true
	page.Summary = ""
	return page
}

func newCard(l *models.Lesson, query string, index int) Card {
	link := "#"
	if l.Link != nil && *l.Link != "" {
		link = *l.Link
	}
	date := ""
	if l.Date != nil {
		date = *l.Date
	}

	return Card{
		Title:        Highlight(l.Title, query),
		Scripture:    Highlight(l.Scripture, query),
		Description:  Highlight(l.DescriptionText(), query),
		Category:     l.Category,
		CategoryName: FormatCategory(l.Category),
		Date:         date,
		Link:         link,
		Gradient:     Gradient(l.Gradient),
		Draft:        l.Status == models.LessonStatusDraft,
		Delay:        fmt.Sprintf("%.1fs", float64(index)*0.1),
	}
}

func tabs(query, active string) []Tab {
	result := make([]Tab, 0, len(filterTabs))
	for _, category := range filterTabs {
		values := url.Values{}
		values.Set("category", category)
		if query != "" {
			values.Set("search", query)
		}

		label := "All Lessons"
		if category != models.CategoryAll {
			label = FormatCategory(category)
		}

		result = append(result, Tab{
			Label:  label,
			Href:   "/lessons?" + values.Encode(),
			Active: category == active,
		})
	}
	return result
}

// Highlight HTML-escapes text and wraps every case-insensitive occurrence of query in <mark>.
// The query is matched literally.
func Highlight(text, query string) template.HTML {
	if query == "" {
		return template.HTML(template.HTMLEscapeString(text))
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(template.HTMLEscapeString(text[last:loc[0]]))
		b.WriteString("<mark>")
		b.WriteString(template.HTMLEscapeString(text[loc[0]:loc[1]]))
		b.WriteString("</mark>")
		last = loc[1]
	}
	b.WriteString(template.HTMLEscapeString(text[last:]))

	return template.HTML(b.String())
}

// FormatCategory returns the display name of a category, or the category itself when unknown
func FormatCategory(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return category
}

// Summary describes the result count for the current search or filter
func Summary(count int, query, category string) string {
	noun := "lessons"
	if count == 1 {
		noun = "lesson"
	}

	switch {
	case query != "":
		return fmt.Sprintf("Found %d %s matching \"%s\"", count, noun, query)
	case category != "" && category != models.CategoryAll:
		return fmt.Sprintf("Showing %d %s in %s", count, noun, FormatCategory(category))
	default:
		return fmt.Sprintf("Showing %d %s", count, noun)
	}
}

// Gradient returns the lesson gradient as CSS, falling back to the default for anything but a plain gradient
func Gradient(value string) template.CSS {
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)
	if !safeGradient.MatchString(value) || strings.Contains(lower, "url(") || strings.Contains(lower, "expression(") {
		return template.CSS(models.DefaultGradient)
	}
	return template.CSS(value)
}
