package handlers

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/internal/api/presenters"
	"CampusFind-Backend/pkg/notification"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetUserNotifications(c *fiber.Ctx) error
		MarkRead(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

func (h *notificationHandler) GetUserNotifications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	notifications, err := h.notificationService.GetUserNotifications(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"notifications": notifications,
	}, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	notificationID := c.Params("id")

	if err := h.notificationService.MarkRead(c.Context(), notificationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedMarkRead, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkRead, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkRead)
}
