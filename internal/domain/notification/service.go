package notification

import (
	"context"
)

// NotificationService defines business logic for notifications.
type NotificationService interface {
	// Notify delivers a notification, deduplicated by idempotency key
	Notify(ctx context.Context, employeeCode, title, body string, data Data, idempotencyKey string) error

	// ListMine retrieves the authenticated employee's notifications
	ListMine(ctx context.Context) ([]Notification, error)

	// MarkRead marks one of the caller's notifications as read
	MarkRead(ctx context.Context, id string) error
}
