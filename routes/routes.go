package routes

import (
	"time"

	"travelsure/handlers"
	"travelsure/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.ChatHandler)
		api.POST("/voice", hb.VoiceHandler)
	}
}

// RegisterSessionRoutes registers session state and transition endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.GET("/:id", hb.GetSessionHandler)
		api.POST("/:id/confirm", hb.ConfirmBindingHandler)
		api.POST("/:id/payment", hb.CompletePaymentHandler)
	}
}

// RegisterPolicyRoutes registers policy endpoints, guarded by the policy access token.
func RegisterPolicyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/policies/:policyNumber")
	{
		api.Use(middleware.PolicyAuthMiddleware())
		api.GET("", hb.GetPolicyHandler)
		api.GET("/certificate", hb.DownloadCertificateHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware(hb.AdminToken))
		adminGroup.GET("/sessions/:id", hb.AdminHandler.GetSessionHandler)
		adminGroup.DELETE("/sessions/:id", hb.AdminHandler.DeleteSessionHandler)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterPolicyRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterAdminRoutes(r, hb)
}
