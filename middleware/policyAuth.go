package middleware

import (
	"net/http"

	"travelsure/utils"

	"github.com/gin-gonic/gin"
)

// PolicyAuthMiddleware accepts a policy access token, either as a bearer token or
// as the "token" query parameter for download links, and only for the policy
// named in the path.
func PolicyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Missing policy access token", "")
			return
		}

		policyNumber, err := utils.ExtractPolicyNumberFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token", "")
			return
		}
		if policyNumber != c.Param("policyNumber") {
			utils.JSONError(c, http.StatusForbidden, "Token does not grant access to this policy", "")
			return
		}

		c.Set("policyNumber", policyNumber)
		c.Next()
	}
}
