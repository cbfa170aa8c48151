package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travelsure/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderHour is the local hour, the day before departure, when reminders fire.
const reminderHour = 9

// Scheduler queues pre-departure reminders.
type Scheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error
}

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("reminder:" + payload.PolicyNumber),
		asynq.MaxRetry(5),
	}

	return task, opts, nil
}

// ParseReminderPayload decodes a reminder task payload.
func ParseReminderPayload(t *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	if p.PolicyNumber == "" {
		return p, fmt.Errorf("invalid reminder payload: missing policy number")
	}
	return p, nil
}

// ReminderFireTime returns when the reminder for a trip departing on departureDate
// (YYYY-MM-DD) should fire: 09:00 UTC the day before. Trips departing within a day
// are reminded immediately.
func ReminderFireTime(departureDate string, now time.Time) (time.Time, bool) {
	dep, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		return time.Time{}, false
	}
	fireAt := dep.AddDate(0, 0, -1).Add(reminderHour * time.Hour)
	if fireAt.Before(now) {
		if dep.AddDate(0, 0, 1).Before(now) {
			return time.Time{}, false
		}
		return now, true
	}
	return fireAt, true
}

// AsynqScheduler enqueues reminders on the Redis-backed asynq queue.
type AsynqScheduler struct {
	client *asynq.Client
}

func NewAsynqScheduler(client *asynq.Client) *AsynqScheduler {
	return &AsynqScheduler{client: client}
}

func (s *AsynqScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
