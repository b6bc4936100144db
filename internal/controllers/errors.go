package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intellinote-be/internal/apperrors"
)

// respondError maps an error kind to its HTTP status and writes the
// message. Anything outside the taxonomy is an unexpected internal error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsAuth(err):
		status = http.StatusUnauthorized
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsUpstream(err):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

// currentUserID reads the authenticated user's ID set by the auth middleware
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		c.Abort()
		return "", false
	}
	return userID.(string), true
}
