package notification

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const notificationListLimit = 20

type (
	NotificationService interface {
		Notify(ctx context.Context, userID uuid.UUID, message, notificationType, link string) error
		GetUserNotifications(ctx context.Context, userID string) ([]*domain.Notification, error)
		MarkRead(ctx context.Context, notificationID, userID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
	}
}

// Notify records an in-app notification. Callers on best-effort paths are
// expected to log and ignore the returned error.
func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, message, notificationType, link string) error {
	notification := &entities.AppNotification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
		Type:    notificationType,
		Link:    link,
	}
	return s.notificationRepository.CreateNotification(ctx, notification)
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepository.GetUserNotifications(ctx, userID, notificationListLimit)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, &domain.Notification{
			ID:        n.ID.String(),
			Message:   n.Message,
			Type:      n.Type,
			Link:      n.Link,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return result, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID string) error {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.notificationRepository.MarkNotificationRead(ctx, notificationID)
}
