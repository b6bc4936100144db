package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intellinote-be/internal/entities"
	"intellinote-be/internal/models"
	"intellinote-be/internal/service"
)

type NoteController struct {
	noteService service.NoteService
}

func NewNoteController(noteService service.NoteService) *NoteController {
	return &NoteController{
		noteService: noteService,
	}
}

// CreateNote handles POST /api/notes
func (nc *NoteController) CreateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	note, err := nc.noteService.Create(userID, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// GetNotes handles GET /api/notes - all notes for the authenticated user,
// most recently touched first
func (nc *NoteController) GetNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := nc.noteService.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if notes == nil {
		notes = []*entities.Note{}
	}
	c.JSON(http.StatusOK, notes)
}

// GetNote handles GET /api/notes/:id
func (nc *NoteController) GetNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	note, err := nc.noteService.Get(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpdateNote handles PUT /api/notes/:id - wholesale replace of title/content
func (nc *NoteController) UpdateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	note, err := nc.noteService.Update(userID, c.Param("id"), req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote handles DELETE /api/notes/:id - permanent removal
func (nc *NoteController) DeleteNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := nc.noteService.Delete(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Note deleted successfully",
	})
}
