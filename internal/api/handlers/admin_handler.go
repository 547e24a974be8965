package handlers

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/internal/api/presenters"
	"CampusFind-Backend/pkg/admin"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetAdminStats(c *fiber.Ctx) error
		DeleteReport(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) GetAdminStats(c *fiber.Ctx) error {
	stats, err := h.adminService.GetAdminStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAdminStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetAdminStats)
}

func (h *adminHandler) DeleteReport(c *fiber.Ctx) error {
	req := domain.DeleteReportRequest{
		ItemID: c.Params("id"),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReport, err)
	}

	if err := h.adminService.DeleteReport(c.Context(), req); err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteReport, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteReport, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteReport)
}
