package handlers

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/internal/api/presenters"
	"CampusFind-Backend/pkg/matching"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	MatchingHandler interface {
		BrowseMatches(c *fiber.Ctx) error
		GetReportMatches(c *fiber.Ctx) error
	}

	matchingHandler struct {
		matchingService matching.MatchingService
	}
)

func NewMatchingHandler(matchingService matching.MatchingService) MatchingHandler {
	return &matchingHandler{
		matchingService: matchingService,
	}
}

func (h *matchingHandler) BrowseMatches(c *fiber.Ctx) error {
	matches, err := h.matchingService.BrowseMatches(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMatches, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"matches": matches,
	}, fiber.StatusOK, domain.MessageSuccessGetMatches)
}

func (h *matchingHandler) GetReportMatches(c *fiber.Ctx) error {
	reportID := c.Params("id")

	matches, err := h.matchingService.FindMatchesForReport(c.Context(), reportID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchReportNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMatches, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMatches, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"matches": matches,
	}, fiber.StatusOK, domain.MessageSuccessGetMatches)
}
