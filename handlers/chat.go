package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"travelsure/models"
	"travelsure/services/conversation"
	"travelsure/services/speech"
	"travelsure/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Conversation is the dialogue surface the HTTP layer drives.
type Conversation interface {
	ProcessMessage(ctx context.Context, sessionID, message string) *conversation.ProcessResult
	RegisterDevice(ctx context.Context, sessionID, token string) error
	ConfirmBinding(ctx context.Context, sessionID string) (*conversation.ProcessResult, error)
	CompletePayment(ctx context.Context, sessionID, paymentID string) (*conversation.ProcessResult, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	EvictSession(ctx context.Context, sessionID string) error
}

// ChatHandler serves text and voice messages.
type ChatHandler struct {
	Conversation Conversation
	Transcriber  speech.Transcriber
}

func NewChatHandler(conv Conversation, transcriber speech.Transcriber) *ChatHandler {
	if transcriber == nil {
		transcriber = speech.Unavailable{}
	}
	return &ChatHandler{Conversation: conv, Transcriber: transcriber}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "message is required", "")
		return
	}

	c.JSON(http.StatusOK, h.reply(c, req))
}

// Voice handles POST /api/chat/voice: a multipart "audio" WAV upload, plus
// optional "sessionId", "deviceToken" and "language" fields.
func (h *ChatHandler) Voice(c *gin.Context) {
	file, _, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "audio file is required", err.Error())
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, speech.MaxFileSize+1))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read audio file", err.Error())
		return
	}
	if len(audio) > speech.MaxFileSize {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "audio file is too large", "")
		return
	}

	text, err := h.Transcriber.Transcribe(c.Request.Context(), audio, c.DefaultPostForm("language", "en-US"))
	switch {
	case errors.Is(err, speech.ErrNotConfigured):
		utils.JSONError(c, http.StatusServiceUnavailable, "voice input is not available", "")
		return
	case err != nil:
		getLogger(c).Warn("Transcription failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "audio could not be transcribed", err.Error())
		return
	case strings.TrimSpace(text) == "":
		utils.JSONError(c, http.StatusUnprocessableEntity, "no speech recognised", "")
		return
	}

	resp := h.reply(c, models.ChatRequest{
		SessionID:   c.PostForm("sessionId"),
		Message:     text,
		DeviceToken: c.PostForm("deviceToken"),
	})
	c.JSON(http.StatusOK, models.VoiceResponse{Transcription: text, ChatResponse: resp})
}

func (h *ChatHandler) reply(c *gin.Context, req models.ChatRequest) models.ChatResponse {
	ctx := c.Request.Context()
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	if req.DeviceToken != "" {
		if err := h.Conversation.RegisterDevice(ctx, req.SessionID, req.DeviceToken); err != nil {
			getLogger(c).Warn("Failed to register device", zap.String("sessionId", req.SessionID), zap.Error(err))
		}
	}
	return toResponse(h.Conversation.ProcessMessage(ctx, req.SessionID, req.Message))
}

func toResponse(r *conversation.ProcessResult) models.ChatResponse {
	return models.ChatResponse{
		SessionID:      r.SessionID,
		Response:       r.Response,
		Step:           r.Step,
		Data:           r.Data,
		RequiresAction: r.RequiresAction,
	}
}
