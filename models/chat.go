package models

// ChatRequest is the payload coming from the frontend into /api/chat. An empty
// SessionID starts a new conversation; DeviceToken is an optional FCM token.
type ChatRequest struct {
	SessionID   string `json:"sessionId"`
	Message     string `json:"message" binding:"required"`
	DeviceToken string `json:"deviceToken,omitempty"`
}

// Action tokens telling the frontend which affordance to render.
const (
	ActionSelectPlan     = "select_plan"
	ActionSelectAddOns   = "select_add_ons"
	ActionConfirmBinding = "confirm_binding"
	ActionPayment        = "payment"
	ActionDownloadPolicy = "download_policy"
)

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	SessionID      string `json:"sessionId"`
	Response       string `json:"response"`
	Step           string `json:"step"`
	Data           any    `json:"data"`
	RequiresAction string `json:"requiresAction"`
}

// PaymentConfirmation is posted by the frontend once the card flow finishes.
type PaymentConfirmation struct {
	PaymentID string `json:"paymentId"`
}

// VoiceResponse is the chat reply to a voice message with its transcription.
type VoiceResponse struct {
	Transcription string `json:"transcription"`
	ChatResponse
}
