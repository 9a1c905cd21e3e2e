package model

import "time"

// Brand is a client brand shown in the showcase.
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	WebsiteURL  string    `json:"website_url"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}
