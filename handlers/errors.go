package handlers

import (
	"errors"
	"net/http"

	policyRepo "travelsure/database/repository/policy"
	"travelsure/services/conversation"
	"travelsure/services/session"
	"travelsure/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found", "")
	case errors.Is(err, policyRepo.ErrPolicyNotFound):
		utils.JSONError(c, http.StatusNotFound, "policy not found", "")
	case conversation.IsInvalidTransition(err):
		utils.JSONError(c, http.StatusConflict, "operation not allowed at this step", err.Error())
	default:
		getLogger(c).Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
