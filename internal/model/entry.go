package model

import "time"

// Entry represents a saved password entry in the database. Password
// material is encrypted client-side; the server only ever sees ciphertext.
type Entry struct {
	ID         int64
	UserID     int64
	Label      string
	Ciphertext []byte
	Length     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EntryRequest represents a create or update request for a saved entry.
type EntryRequest struct {
	Label      string `json:"label"`
	Ciphertext string `json:"ciphertext"` // base64 encoded
	Length     int    `json:"length,omitempty"`
}

// EntryResponse represents a saved entry in API responses.
type EntryResponse struct {
	ID         int64     `json:"id"`
	Label      string    `json:"label"`
	Ciphertext string    `json:"ciphertext"` // base64 encoded
	Length     int       `json:"length,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
