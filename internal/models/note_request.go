package models

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"` // May be empty
}

// UpdateNoteRequest represents the request body for updating a note.
// Title and content replace the stored values wholesale.
type UpdateNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// ImproveNoteRequest represents the request body for AI note improvement
type ImproveNoteRequest struct {
	Content      string  `json:"content" binding:"required"`
	CustomPrompt *string `json:"customPrompt,omitempty"` // Optional override of the default instruction
}
