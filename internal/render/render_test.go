package render

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/friendsofchildren/backend/internal/filter"
	"github.com/friendsofchildren/backend/internal/models"
	"github.com/friendsofchildren/backend/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		query    string
		expected template.HTML
	}{
		{
			name:     "empty query escapes only",
			text:     "Faith & Purpose",
			query:    "",
			expected: "Faith &amp; Purpose",
		},
		{
			name:     "case insensitive match keeps original case",
			text:     "The Good Samaritan",
			query:    "samaritan",
			expected: "The Good <mark>Samaritan</mark>",
		},
		{
			name:     "every occurrence",
			text:     "Noah built the ark, noah obeyed",
			query:    "NOAH",
			expected: "<mark>Noah</mark> built the ark, <mark>noah</mark> obeyed",
		},
		{
			name:     "regex characters are literal",
			text:     "Genesis 1:1-31 (a.k.a. creation)",
			query:    "(a.k.a.",
			expected: "Genesis 1:1-31 <mark>(a.k.a.</mark> creation)",
		},
		{
			name:     "dot does not match any character",
			text:     "abc",
			query:    ".",
			expected: "abc",
		},
		{
			name:     "markup in text and query is escaped",
			text:     "<script>alert(1)</script>",
			query:    "<script>",
			expected: "<mark>&lt;script&gt;</mark>alert(1)&lt;/script&gt;",
		},
		{
			name:     "no match",
			text:     "Mark 10:13-16",
			query:    "xyz123",
			expected: "Mark 10:13-16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Highlight(tt.text, tt.query))
		})
	}
}

func TestFormatCategory(t *testing.T) {
	assert.Equal(t, "Creation", FormatCategory("creation"))
	assert.Equal(t, "Faith & Purpose", FormatCategory("faith"))
	assert.Equal(t, "Parables", FormatCategory("parables"))
	assert.Equal(t, "psalms", FormatCategory("psalms"))
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		query    string
		category string
		expected string
	}{
		{name: "search single", count: 1, query: "samaritan", category: "all", expected: `Found 1 lesson matching "samaritan"`},
		{name: "search wins over category", count: 0, query: "xyz123", category: "faith", expected: `Found 0 lessons matching "xyz123"`},
		{name: "category", count: 3, category: "faith", expected: "Showing 3 lessons in Faith & Purpose"},
		{name: "all", count: 6, category: "all", expected: "Showing 6 lessons"},
		{name: "empty selector", count: 1, expected: "Showing 1 lesson"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summary(tt.count, tt.query, tt.category))
		})
	}
}

func TestGradient(t *testing.T) {
	tests := []struct {
		value    string
		expected template.CSS
	}{
		{"linear-gradient(135deg, #f093fb 0%, #f5576c 100%)", "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)"},
		{"linear-gradient(to right, rgba(0, 0, 0, 0.5), #fff)", "linear-gradient(to right, rgba(0, 0, 0, 0.5), #fff)"},
		{"", models.DefaultGradient},
		{"red; position: fixed", models.DefaultGradient},
		{"linear-gradient(red, blue); color: red", models.DefaultGradient},
		{"linear-gradient(url(http), red)", models.DefaultGradient},
		{"linear-gradient(\"red\", blue)", models.DefaultGradient},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, Gradient(tt.value))
		})
	}
}

func TestNewLessonsPage(t *testing.T) {
	lessons := filter.Lessons(withIDs(seed.Lessons()), "faith", "faith")

	page := NewLessonsPage(lessons, "faith", "faith")

	require.Len(t, page.Cards, 3)
	assert.Equal(t, `Found 3 lessons matching "faith"`, page.Summary)
	assert.Equal(t, "Faith &amp; Purpose", template.HTMLEscapeString(page.Cards[0].CategoryName))
	assert.Equal(t, "0.0s", page.Cards[0].Delay)
	assert.Equal(t, "0.1s", page.Cards[1].Delay)
	assert.True(t, page.Cards[2].Draft)

	require.Len(t, page.Tabs, 4)
	assert.Equal(t, "All Lessons", page.Tabs[0].Label)
	assert.False(t, page.Tabs[0].Active)
	assert.True(t, page.Tabs[2].Active)
	assert.Equal(t, "/lessons?category=faith&search=faith", page.Tabs[2].Href)
}

func TestNewLessonsPage_KeepsTypedQuery(t *testing.T) {
	lessons := filter.Lessons(withIDs(seed.Lessons()), "samaritan", "all")

	page := NewLessonsPage(lessons, "Samaritan", "all")

	assert.Equal(t, "Samaritan", page.Query)
	assert.Equal(t, `Found 1 lesson matching "samaritan"`, page.Summary)
	assert.Equal(t, template.HTML("The Good <mark>Samaritan</mark>"), page.Cards[0].Title)
	assert.Equal(t, "/lessons?category=all&search=Samaritan", page.Tabs[0].Href)
}

func TestRenderer_Lessons(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	t.Run("cards with highlights", func(t *testing.T) {
		lessons := filter.Lessons(withIDs(seed.Lessons()), "samaritan", "all")
		var buf bytes.Buffer

		require.NoError(t, r.Lessons(&buf, NewLessonsPage(lessons, "samaritan", "all")))

		html := buf.String()
		assert.Equal(t, 1, strings.Count(html, `<article class="lesson-card"`))
		assert.Contains(t, html, "The Good <mark>Samaritan</mark>")
		assert.Contains(t, html, "background: linear-gradient(135deg")
		assert.Contains(t, html, "Found 1 lesson matching &#34;samaritan&#34;")
		assert.NotContains(t, html, "No Lessons Found")
	})

	t.Run("no results placeholder", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, r.Lessons(&buf, NewLessonsPage([]models.Lesson{}, "xyz123", "all")))

		html := buf.String()
		assert.Contains(t, html, "No Lessons Found")
		assert.Contains(t, html, "Clear Search")
		assert.NotContains(t, html, `<article class="lesson-card"`)
	})

	t.Run("unavailable notice", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, r.Lessons(&buf, UnavailablePage("", "all")))

		html := buf.String()
		assert.Contains(t, html, "Lessons Unavailable")
		assert.NotContains(t, html, "No Lessons Found")
	})

	t.Run("query is escaped in the form", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, r.Lessons(&buf, NewLessonsPage(nil, `"><script>`, "all")))

		assert.NotContains(t, buf.String(), "<script>")
	})
}

func withIDs(lessons []models.Lesson) []models.Lesson {
	for i := range lessons {
		lessons[i].ID = i + 1
	}
	return lessons
}
