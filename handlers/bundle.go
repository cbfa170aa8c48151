package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AdminToken string

	// Chat endpoints
	ChatHandler  gin.HandlerFunc
	VoiceHandler gin.HandlerFunc

	// Session endpoints
	GetSessionHandler      gin.HandlerFunc
	ConfirmBindingHandler  gin.HandlerFunc
	CompletePaymentHandler gin.HandlerFunc

	// Policy endpoints
	GetPolicyHandler           gin.HandlerFunc
	DownloadCertificateHandler gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}

// NewHandlerBundle wires the handlers for one conversation service.
func NewHandlerBundle(chat *ChatHandler, sessions *SessionHandler, policies *PolicyHandler, admin *AdminHandler, adminToken string) *HandlerBundle {
	return &HandlerBundle{
		AdminToken:                 adminToken,
		ChatHandler:                chat.Chat,
		VoiceHandler:               chat.Voice,
		GetSessionHandler:          sessions.GetSession,
		ConfirmBindingHandler:      sessions.ConfirmBinding,
		CompletePaymentHandler:     sessions.CompletePayment,
		GetPolicyHandler:           policies.GetPolicy,
		DownloadCertificateHandler: policies.DownloadCertificate,
		AdminHandler:               admin,
	}
}
