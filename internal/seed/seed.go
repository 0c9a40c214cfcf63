// Package seed holds the demo lessons and media the ministry site ships with
package seed

import (
	"strconv"

	"github.com/friendsofchildren/backend/internal/models"
)

const elementary = "Elementary (6-11)"

// Lessons returns the demo lessons in publication order, newest first.
// IDs and timestamps are left for the store to assign.
func Lessons() []models.Lesson {
	return []models.Lesson{
		{
			Title:       "God's Amazing Creation",
			Scripture:   "Genesis 1:1-31",
			Category:    "creation",
			Date:        str("Dec 1, 2024"),
			Description: str("Explore the wonder of God's creation with hands-on activities and engaging discussions. Students will learn about the seven days of creation and discover their role as caretakers of God's world."),
			Link:        str("lesson1.html"),
			Gradient:    "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
			Status:      models.LessonStatusPublished,
			Overview:    str("This lesson introduces children to the magnificent story of creation."),
			Objectives:  str("Students will understand the sequence of the seven days of creation"),
			AgeGroup:    str(elementary),
			Duration:    minutes(45),
		},
		{
			Title:       "Jesus Loves the Little Children",
			Scripture:   "Mark 10:13-16",
			Category:    "faith",
			Date:        str("Nov 24, 2024"),
			Description: str("A gentle introduction to Jesus' love for children. Through storytelling, songs, and simple crafts, discover how special each child is to Jesus."),
			Link:        str("lesson2.html"),
			Gradient:    "linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
			Status:      models.LessonStatusPublished,
			AgeGroup:    str(elementary),
			Duration:    minutes(45),
		},
		{
			Title:       "Living with Purpose",
			Scripture:   "Jeremiah 29:11",
			Category:    "faith",
			Date:        str("Nov 17, 2024"),
			Description: str("Discover God's plan for your life through interactive discussions and real-world applications. Explore gifts, passions, and how to live purposefully for Christ."),
			Link:        str("lesson3.html"),
			Gradient:    "linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
			Status:      models.LessonStatusPublished,
			AgeGroup:    str(elementary),
			Duration:    minutes(45),
		},
		{
			Title:       "The Good Samaritan",
			Scripture:   "Luke 10:25-37",
			Category:    "parables",
			Date:        str("Nov 10, 2024"),
			Description: str("Learn about showing kindness to everyone through the parable. Interactive role-play and discussion help understand practical ways to love our neighbors."),
			Link:        str("lesson4.html"),
			Gradient:    "linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
			Status:      models.LessonStatusPublished,
			AgeGroup:    str(elementary),
			Duration:    minutes(45),
		},
		{
			Title:       "Noah's Ark Adventure",
			Scripture:   "Genesis 6-9",
			Category:    "creation",
			Date:        str("Nov 3, 2024"),
			Description: str("Join Noah on his amazing adventure with fun animal activities, songs, and crafts. Learn about obedience and God's promises through this beloved story."),
			Link:        str("lesson5.html"),
			Gradient:    "linear-gradient(135deg, #a8edea 0%, #fed6e3 100%)",
			Status:      models.LessonStatusPublished,
			AgeGroup:    str(elementary),
			Duration:    minutes(45),
		},
		{
			Title:       "Faith in Action",
			Scripture:   "James 2:14-26",
			Category:    "faith",
			Date:        str("Oct 27, 2024"),
			Description: str("Challenge everyone to put their faith into action with practical service projects and discussions about living out beliefs in everyday life."),
			Link:        str("lesson6.html"),
			Gradient:    "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
			Status:      models.LessonStatusDraft,
			AgeGroup:    str(elementary),
			Duration:    minutes(45),
		},
	}
}

// Media returns the demo media records. The files themselves are not shipped.
func Media() []models.MediaAsset {
	return []models.MediaAsset{
		{Name: "creation-banner.jpg", Type: models.MediaTypeImage, Size: "2.4 MB", Date: "Dec 1, 2024", Icon: "IMG", URL: "/uploads/creation-banner.jpg"},
		{Name: "jesus-loves-children.jpg", Type: models.MediaTypeImage, Size: "1.8 MB", Date: "Nov 28, 2024", Icon: "IMG", URL: "/uploads/jesus-loves-children.jpg"},
		{Name: "bible-story-intro.mp4", Type: models.MediaTypeVideo, Size: "45.2 MB", Date: "Nov 25, 2024", Icon: "VID", URL: "/uploads/bible-story-intro.mp4"},
		{Name: "worship-song.mp3", Type: models.MediaTypeAudio, Size: "5.6 MB", Date: "Nov 20, 2024", Icon: "AUD", URL: "/uploads/worship-song.mp3"},
		{Name: "noahs-ark.png", Type: models.MediaTypeImage, Size: "3.1 MB", Date: "Nov 15, 2024", Icon: "IMG", URL: "/uploads/noahs-ark.png"},
		{Name: "good-samaritan.mp4", Type: models.MediaTypeVideo, Size: "52.8 MB", Date: "Nov 10, 2024", Icon: "VID", URL: "/uploads/good-samaritan.mp4"},
		{Name: "prayer-background.mp3", Type: models.MediaTypeAudio, Size: "4.2 MB", Date: "Nov 5, 2024", Icon: "AUD", URL: "/uploads/prayer-background.mp3"},
		{Name: "lesson-thumbnail.jpg", Type: models.MediaTypeImage, Size: "890 KB", Date: "Nov 1, 2024", Icon: "IMG", URL: "/uploads/lesson-thumbnail.jpg"},
	}
}

func str(s string) *string {
	return &s
}

func minutes(m int) *models.Duration {
	d := models.Duration(strconv.Itoa(m))
	return &d
}
