package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intellinote-be/internal/models"
	"intellinote-be/internal/service"
)

type AIController struct {
	aiService service.AIService
}

func NewAIController(aiService service.AIService) *AIController {
	return &AIController{
		aiService: aiService,
	}
}

// ImproveNote handles POST /api/notes/improve. The improved text is never
// persisted here; the client submits a regular update if it accepts it.
func (ic *AIController) ImproveNote(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req models.ImproveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	improved, err := ic.aiService.Improve(c.Request.Context(), req.Content, req.CustomPrompt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ImproveNoteResponse{
		Improved: improved,
	})
}
