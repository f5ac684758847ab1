package notification

import "context"

// NotificationService enqueues fire-and-forget notices for delivery.
// There is no retry or delivery-confirmation contract beyond the queue's own.
type NotificationService interface {
	Send(ctx context.Context, userID, message string) error
}
