package notification

import (
	"CampusFind-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.AppNotification) error
		GetUserNotifications(ctx context.Context, userID string, limit int) ([]*entities.AppNotification, error)
		GetNotificationByID(ctx context.Context, id string) (*entities.AppNotification, error)
		MarkNotificationRead(ctx context.Context, id string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.AppNotification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetUserNotifications(ctx context.Context, userID string, limit int) ([]*entities.AppNotification, error) {
	var notifications []*entities.AppNotification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.AppNotification, error) {
	var notification entities.AppNotification
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) MarkNotificationRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.AppNotification{}).
		Where("id = ?", id).
		Update("read", true).Error
}
