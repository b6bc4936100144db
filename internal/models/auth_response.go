package models

import "time"

// RegisterResponse represents the response after user registration.
// The password hash is never part of it.
type RegisterResponse struct {
	UserID    string    `json:"user_id"` // UUID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents the response after successful login
type AuthResponse struct {
	UserID    string    `json:"user_id"` // UUID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Token     string    `json:"token"` // JWT token
}
