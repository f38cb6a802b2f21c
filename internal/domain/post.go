package domain

import "time"

// Post represents an editorial article. Content is the authoritative
// long-form body; Tags are persisted as a serialized JSON list.
type Post struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Excerpt         string    `json:"excerpt,omitempty"`
	Content         string    `json:"content"`
	Author          string    `json:"author"`
	Date            string    `json:"date"`
	Category        string    `json:"category"`
	Image           string    `json:"image,omitempty"`
	Tags            []string  `json:"tags"`
	Featured        bool      `json:"featured"`
	ThumbnailURL    string    `json:"thumbnailUrl,omitempty"`
	ThumbnailPrompt string    `json:"thumbnailPrompt,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// PostFilters is the closed set of predicates a caller may filter posts by.
type PostFilters struct {
	Category string
	Author   string
	Featured *bool
	Search   string
}
