package workers

import (
	"context"
	"encoding/json"
	"time"

	"washly/config"
	"washly/models"
	"washly/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the asynq consumer for queued notifications in
// the background. Delivery here is the log sink; the queue plumbing is the
// contract the rest of the system depends on.
func InitNotificationWorker(logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeNotificationSend, handleNotificationTask(logger))

	go func() {
		const maxAttempts = 5
		logger.Info("starting notification worker")

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("notification worker failed to start",
					zap.Int("attempt", attempt),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))
				if attempt == maxAttempts {
					logger.Fatal("notification worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempt*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNotificationTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NotificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid notification payload", zap.Error(err))
			return err
		}

		logger.Info("delivering notification",
			zap.String("userId", p.UserID),
			zap.String("message", p.Message),
			zap.Time("enqueuedAt", p.EnqueuedAt))
		return nil
	}
}
