package domain

import (
	"errors"
	"time"
)

const (
	NotificationTypeClaim  = "claim"
	NotificationTypeMatch  = "match"
	NotificationTypeSystem = "system"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkRead         = "notification marked as read"

	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedMarkRead         = "failed to mark notification as read"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	Notification struct {
		ID        string    `json:"id"`
		Message   string    `json:"message"`
		Type      string    `json:"type"`
		Link      string    `json:"link,omitempty"`
		Read      bool      `json:"read"`
		CreatedAt time.Time `json:"created_at"`
	}

	MarkReadRequest struct {
		NotificationID string `json:"notification_id" validate:"required,uuid"`
	}
)
