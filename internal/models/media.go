package models

import "time"

// MediaType represents the kind of an uploaded file
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeAudio MediaType = "audio"
	MediaTypeFile  MediaType = "file"
)

// MediaAsset represents an uploaded file's metadata
type MediaAsset struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      MediaType `json:"type"`
	Size      string    `json:"size"`
	Date      string    `json:"date"`
	Icon      string    `json:"icon"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}
