package handlers

import (
	"net/http"

	"travelsure/models"
	"travelsure/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes session state and the button-driven transitions.
type SessionHandler struct {
	Conversation Conversation
}

func NewSessionHandler(conv Conversation) *SessionHandler {
	return &SessionHandler{Conversation: conv}
}

// GetSession handles GET /api/sessions/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, err := h.Conversation.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// ConfirmBinding handles POST /api/sessions/:id/confirm.
func (h *SessionHandler) ConfirmBinding(c *gin.Context) {
	res, err := h.Conversation.ConfirmBinding(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}

// CompletePayment handles POST /api/sessions/:id/payment. The body is optional.
func (h *SessionHandler) CompletePayment(c *gin.Context) {
	var body models.PaymentConfirmation
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}
	res, err := h.Conversation.CompletePayment(c.Request.Context(), c.Param("id"), body.PaymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(res))
}
