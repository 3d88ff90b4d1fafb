package postgresql

import (
	"context"
	"fmt"

	"github.com/crewdesk/crew-backend-go/internal/domain/notification"
	"github.com/crewdesk/crew-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

// Create implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, employee_code, title, body, data, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (idempotency_key) DO NOTHING
	`

	_, err := q.Exec(ctx, query, n.ID, n.EmployeeCode, n.Title, n.Body, n.Data, n.IdempotencyKey)
	return err
}

// ListByEmployee implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) ListByEmployee(ctx context.Context, employeeCode string, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, title, body, data, idempotency_key, read_at, created_at
		FROM notifications
		WHERE employee_code = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeCode, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(&n.ID, &n.EmployeeCode, &n.Title, &n.Body, &n.Data, &n.IdempotencyKey, &n.ReadAt, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead implements notification.NotificationRepository.
func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id, employeeCode string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET read_at = NOW()
		WHERE id = $1 AND employee_code = $2 AND read_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, employeeCode)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return fmt.Errorf("notification with id %s not found or already read", id)
	}
	return nil
}
