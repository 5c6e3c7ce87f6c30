package model

import "time"

// Project is one portfolio entry.
type Project struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	Description      string    `json:"description"`
	ImageURL         string    `json:"image_url,omitempty"`
	GalleryURLs      []string  `json:"gallery_urls,omitempty"`
	Category         string    `json:"category,omitempty"`
	RepoURL          string    `json:"repo_url,omitempty"`
	LiveURL          string    `json:"live_url,omitempty"`
	Featured         bool      `json:"featured"`
	Published        bool      `json:"published"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
