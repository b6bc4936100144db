package models

// ImproveNoteResponse represents the response for AI note improvement.
// The result is transient; the client decides whether to apply it.
type ImproveNoteResponse struct {
	Improved string `json:"improved"`
}

// MessageResponse represents a simple confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}
