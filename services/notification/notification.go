package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"washly/models"
	"washly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService queues notices on Redis via asynq.
type DefaultNotificationService struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func NewDefaultNotificationService(client *asynq.Client, logger *zap.Logger) (*DefaultNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &DefaultNotificationService{Client: client, Logger: logger}, nil
}

// Send validates the notice and enqueues it. Returns once the queue has
// accepted the task; delivery happens in the worker.
func (s *DefaultNotificationService) Send(ctx context.Context, userID, message string) error {
	if userID == "" {
		return utils.NewValidationError("notification recipient is required")
	}
	if strings.TrimSpace(message) == "" {
		return utils.NewValidationError("notification message must not be empty")
	}

	task, err := NewNotificationTask(models.NotificationPayload{
		UserID:     userID,
		Message:    message,
		EnqueuedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to build notification task: %w", err)
	}

	info, err := s.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Debug("notification enqueued",
			zap.String("taskId", info.ID),
			zap.String("userId", userID),
		)
	}
	return nil
}
