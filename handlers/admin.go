package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Conversation Conversation
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(conv Conversation) *AdminHandler {
	return &AdminHandler{Conversation: conv}
}

// GetSessionHandler returns a full session, transcript included.
func (ah *AdminHandler) GetSessionHandler(c *gin.Context) {
	s, err := ah.Conversation.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteSessionHandler evicts a session from the store.
func (ah *AdminHandler) DeleteSessionHandler(c *gin.Context) {
	id := c.Param("id")
	if err := ah.Conversation.EvictSession(c.Request.Context(), id); err != nil {
		zap.L().Error("Failed to evict session", zap.String("sessionId", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted", "sessionId": id})
}
