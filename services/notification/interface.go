package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Notifier delivers push notifications to a traveller's device.
type Notifier interface {
	Push(ctx context.Context, token, title, body string, data map[string]string) error
}

// Sender is the part of the FCM client the notifier needs.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotifier sends pushes through Firebase Cloud Messaging.
type FCMNotifier struct {
	client Sender
	logger *zap.Logger
}

func NewFCMNotifier(client Sender, logger *zap.Logger) (*FCMNotifier, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: FCM client is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FCMNotifier{client: client, logger: logger}, nil
}

// Push sends a high priority notification to a single device token.
func (n *FCMNotifier) Push(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return fmt.Errorf("Push: no device token")
	}
	response, err := n.client.Send(ctx, buildMessage(token, title, body, data))
	if err != nil {
		return fmt.Errorf("Push: failed to send FCM message: %w", err)
	}
	n.logger.Debug("Push sent", zap.String("message", response))
	return nil
}

func buildMessage(token, title, body string, data map[string]string) *messaging.Message {
	payload := make(map[string]string, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	if _, ok := payload["role"]; !ok {
		payload["role"] = "traveller"
	}

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: payload,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}
}

// LogNotifier writes notifications to the log instead of delivering them.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Push(_ context.Context, token, title, body string, data map[string]string) error {
	if n.Logger != nil {
		n.Logger.Info("Push notification",
			zap.String("token", token),
			zap.String("title", title),
			zap.String("body", body),
			zap.Any("data", data))
	}
	return nil
}
