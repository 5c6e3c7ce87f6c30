package model

import "time"

// Profile is the singleton record describing the site owner. Exactly one
// row exists, stored under a fixed key; migrations seed it.
type Profile struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Email     string    `json:"email"`
	Location  string    `json:"location,omitempty"`
	GitHubURL string    `json:"github_url,omitempty"`
	LinkedIn  string    `json:"linkedin_url,omitempty"`
	Skills    []string  `json:"skills"`
	ResumeURL string    `json:"resume_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
