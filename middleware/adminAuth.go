package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"travelsure/utils"

	"github.com/gin-gonic/gin"
)

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// AdminAuthMiddleware guards the admin API with the static ADMIN_TOKEN. With no
// token configured the admin API is disabled.
func AdminAuthMiddleware(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			utils.JSONError(c, http.StatusServiceUnavailable, "Admin API is disabled", "")
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			return
		}
		if subtle.ConstantTimeCompare([]byte(tokenString), []byte(adminToken)) != 1 {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized admin access", "")
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
