package notification

import (
	"context"
	"fmt"

	"github.com/crewdesk/crew-backend-go/internal/domain/auth"
	"github.com/crewdesk/crew-backend-go/internal/domain/notification"
	"github.com/crewdesk/crew-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
)

const defaultListLimit = 50

type NotificationServiceImpl struct {
	notification.NotificationRepository
}

func NewNotificationService(notificationRepository notification.NotificationRepository) *NotificationServiceImpl {
	return &NotificationServiceImpl{NotificationRepository: notificationRepository}
}

// Notify implements notification.NotificationService.
func (s *NotificationServiceImpl) Notify(ctx context.Context, employeeCode, title, body string, data notification.Data, idempotencyKey string) error {
	n := notification.Notification{
		ID:             uuid.NewString(),
		EmployeeCode:   employeeCode,
		Title:          title,
		Body:           body,
		Data:           data,
		IdempotencyKey: idempotencyKey,
	}
	if err := s.NotificationRepository.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListMine implements notification.NotificationService.
func (s *NotificationServiceImpl) ListMine(ctx context.Context) ([]notification.Notification, error) {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return nil, auth.ErrInvalidToken
	}

	notifications, err := s.NotificationRepository.ListByEmployee(ctx, code, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	code := jwt.EmployeeCodeFromContext(ctx)
	if code == "" {
		return auth.ErrInvalidToken
	}

	if err := s.NotificationRepository.MarkRead(ctx, id, code); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
