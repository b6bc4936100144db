package entities

import "time"

// Note represents a note entity in the database
type Note struct {
	ID        string    `json:"id"`      // UUID
	UserID    string    `json:"user_id"` // Owner, UUID
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"` // Refreshed on every successful update
}
