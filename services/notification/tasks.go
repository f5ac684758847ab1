package notification

import (
	"encoding/json"

	"washly/models"

	"github.com/hibiken/asynq"
)

// TypeNotificationSend is the asynq task type consumed by the delivery worker.
const TypeNotificationSend = "notification:send"

// NewNotificationTask wraps a payload into a queueable task.
func NewNotificationTask(payload models.NotificationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotificationSend, b), nil
}
