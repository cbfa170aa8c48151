package notification

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, m)
	return "projects/test/messages/1", nil
}

func TestBuildMessage(t *testing.T) {
	data := map[string]string{"type": "trip_reminder"}
	msg := buildMessage("tok", "Bon voyage", "Your trip starts tomorrow", data)

	assert.Equal(t, "tok", msg.Token)
	assert.Equal(t, "Bon voyage", msg.Notification.Title)
	assert.Equal(t, "traveller", msg.Data["role"])
	assert.Equal(t, "trip_reminder", msg.Data["type"])
	assert.Equal(t, "high", msg.Android.Priority)
	assert.Equal(t, "10", msg.APNS.Headers["apns-priority"])
	_, mutated := data["role"]
	assert.False(t, mutated)
}

func TestFCMNotifierPush(t *testing.T) {
	sender := &fakeSender{}
	n, err := NewFCMNotifier(sender, nil)
	require.NoError(t, err)

	require.NoError(t, n.Push(context.Background(), "tok", "t", "b", nil))
	require.Len(t, sender.sent, 1)

	assert.Error(t, n.Push(context.Background(), "", "t", "b", nil))

	sender.err = errors.New("unavailable")
	assert.Error(t, n.Push(context.Background(), "tok", "t", "b", nil))

	_, err = NewFCMNotifier(nil, nil)
	assert.Error(t, err)
}
