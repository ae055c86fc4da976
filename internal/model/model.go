// Package model contains domain entities shared across layers.
// Data shapes only, no behaviour.
package model

import "time"

// Dataset is one catalog entry as it appears in a listing.
type Dataset struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Creator   string    `json:"creator"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
