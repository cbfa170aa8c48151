package cron

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travelsure/config"
	policyRepo "travelsure/database/repository/policy"
	"travelsure/services/notification"
	"travelsure/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the asynq connection for the reminder queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(ctx context.Context, notifier notification.Notifier, policies policyRepo.PolicyRepository, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifier, policies, logger))

	go monitorRedisConnection(ctx, logger)

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Reminder worker gave up; reminders will queue until restart")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()
	return srv
}

func handleReminderTask(notifier notification.Notifier, policies policyRepo.PolicyRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReminderPayload(task)
		if err != nil {
			logger.Warn("Invalid reminder payload", zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		policy, err := policies.GetByNumber(ctx, p.PolicyNumber)
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			logger.Warn("Reminder for unknown policy", zap.String("policy", p.PolicyNumber))
			return nil
		}
		if err != nil {
			return err
		}
		if policy.ReminderSent {
			return nil
		}

		logger.Info("Sending trip reminder", zap.String("policy", p.PolicyNumber), zap.String("fireDate", p.FireDate))
		data := map[string]string{
			"type":         "trip_reminder",
			"policyNumber": p.PolicyNumber,
			"fireDate":     p.FireDate,
		}
		if err := notifier.Push(ctx, p.DeviceToken, p.Title, p.Body, data); err != nil {
			logger.Warn("Failed to send reminder", zap.String("policy", p.PolicyNumber), zap.Error(err))
			return err
		}
		return policies.MarkReminderSent(ctx, p.PolicyNumber)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context, logger *zap.Logger) {
	opt := RedisOpt()
	client := redis.NewClient(&redis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("Reminder queue Redis connection lost", zap.Error(err))
			}
		}
	}
}
