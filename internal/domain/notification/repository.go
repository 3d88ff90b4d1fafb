package notification

import (
	"context"
)

// NotificationRepository defines data access for notifications.
type NotificationRepository interface {
	// Create inserts a notification. Inserting an existing idempotency key
	// is a silent no-op.
	Create(ctx context.Context, n Notification) error

	// ListByEmployee retrieves an employee's notifications, newest first
	ListByEmployee(ctx context.Context, employeeCode string, limit int) ([]Notification, error)

	// MarkRead marks a notification as read
	MarkRead(ctx context.Context, id, employeeCode string) error
}
