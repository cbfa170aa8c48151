package tasks

import (
	"testing"
	"time"

	"travelsure/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderTaskRoundTrip(t *testing.T) {
	payload := models.ReminderPayload{PolicyNumber: "TS-20250110-ABC123", SessionID: "s1", Title: "t", Body: "b"}
	task, opts, err := NewReminderTask(payload, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeSendReminder, task.Type())
	assert.Len(t, opts, 3)

	got, err := ParseReminderPayload(task)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestReminderFireTime(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)

	at, ok := ReminderFireTime("2025-03-15", now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), at)

	at, ok = ReminderFireTime("2025-01-11", now)
	require.True(t, ok)
	assert.Equal(t, now, at)

	_, ok = ReminderFireTime("2025-01-01", now)
	assert.False(t, ok)

	_, ok = ReminderFireTime("soon", now)
	assert.False(t, ok)
}
