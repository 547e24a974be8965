package handlers

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/internal/api/presenters"
	"CampusFind-Backend/pkg/report"
	"CampusFind-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReportHandler interface {
		SubmitReport(c *fiber.Ctx) error
		GetUserReports(c *fiber.Ctx) error
		SearchItems(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
		GetItemDetails(c *fiber.Ctx) error
		NotifyOwner(c *fiber.Ctx) error
	}

	reportHandler struct {
		reportService report.ReportService
		userService   user.UserService
		validator     *validator.Validate
	}
)

func NewReportHandler(reportService report.ReportService, userService user.UserService, validator *validator.Validate) ReportHandler {
	return &reportHandler{
		reportService: reportService,
		userService:   userService,
		validator:     validator,
	}
}

func (h *reportHandler) SubmitReport(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	created, err := h.reportService.SubmitReport(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateReport, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessCreateReport)
}

func (h *reportHandler) GetUserReports(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	reports, err := h.reportService.GetUserReports(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReports, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reports": reports,
	}, fiber.StatusOK, domain.MessageSuccessGetReports)
}

func (h *reportHandler) SearchItems(c *fiber.Ctx) error {
	req := domain.SearchItemsRequest{
		Query: c.Query("q"),
		Type:  c.Query("type"),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchItems, err)
	}

	items, err := h.reportService.SearchItems(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
	}, fiber.StatusOK, domain.MessageSuccessSearchItems)
}

func (h *reportHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	url, err := h.reportService.UploadImage(c.Context(), file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"url": url,
	}, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}

func (h *reportHandler) GetItemDetails(c *fiber.Ctx) error {
	itemID := c.Params("id")

	details, err := h.reportService.GetItemDetails(c.Context(), itemID)
	if err != nil {
		if err == domain.ErrItemNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetItemDetails, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetItemDetails, err)
	}

	return presenters.SuccessResponse(c, details, fiber.StatusOK, domain.MessageSuccessGetItemDetails)
}

func (h *reportHandler) NotifyOwner(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.NotifyOwnerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNotifyOwner, err)
	}

	sender, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNotifyOwner, err)
	}

	if err := h.reportService.NotifyOwner(c.Context(), *req, userID, sender.Name); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNotifyOwner, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessNotifyOwner)
}
