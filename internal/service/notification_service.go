package service

import (
	"context"

	"go.uber.org/zap"

	"venuecrew/backend/internal/model"
	"venuecrew/backend/internal/repository"
)

// NotificationService delivers in-app messages.
type NotificationService interface {
	// Notify is fire-and-forget: a failed write is logged, never surfaced,
	// so staffing operations do not fail on notification problems.
	Notify(ctx context.Context, recipientID, notificationType, message, referenceID string)
	List(ctx context.Context, recipientID string, unreadOnly bool, offset, limit int) ([]model.Notification, int64, error)
	MarkRead(ctx context.Context, id, recipientID string) error
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService creates a NotificationService instance.
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) Notify(ctx context.Context, recipientID, notificationType, message, referenceID string) {
	notification := &model.Notification{
		RecipientID: recipientID,
		Type:        notificationType,
		Message:     message,
		ReferenceID: referenceID,
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Warn("notification dispatch failed",
			zap.String("recipient_id", recipientID),
			zap.String("type", notificationType),
			zap.Error(err))
	}
}

func (s *notificationService) List(ctx context.Context, recipientID string, unreadOnly bool, offset, limit int) ([]model.Notification, int64, error) {
	notifications, total, err := s.repo.Notification.ListByRecipient(ctx, recipientID, unreadOnly, offset, limit)
	if err != nil {
		s.logger.Error("list notifications failed", zap.Error(err))
		return nil, 0, err
	}
	return notifications, total, err
}

func (s *notificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	if err := s.repo.Notification.MarkRead(ctx, id, recipientID); err != nil {
		s.logger.Error("mark notification read failed", zap.Error(err))
		return err
	}
	return nil
}
