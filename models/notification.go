package models

import "time"

// NotificationPayload is the queued message handed to the delivery worker.
type NotificationPayload struct {
	UserID     string    `json:"userId"`
	Message    string    `json:"message"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}
