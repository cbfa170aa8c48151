package handlers

import (
	"net/http"

	"travelsure/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest dependency health snapshot. Dependencies
// that are not configured are not checked.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm TravelSure",
		"dependencies": utils.GetHealthStatus(),
	})
}
