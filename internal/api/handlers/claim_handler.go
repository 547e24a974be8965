package handlers

import (
	"CampusFind-Backend/domain"
	"CampusFind-Backend/internal/api/presenters"
	"CampusFind-Backend/pkg/claim"
	"CampusFind-Backend/pkg/user"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		SubmitClaim(c *fiber.Ctx) error
		DecideClaim(c *fiber.Ctx) error
		GetUserClaims(c *fiber.Ctx) error
		GetIncomingClaims(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		userService  user.UserService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, userService user.UserService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		userService:  userService,
		validator:    validator,
	}
}

func (h *claimHandler) SubmitClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SubmitClaimRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitClaim, err)
	}

	claimer, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitClaim, err)
	}

	created, err := h.claimService.SubmitClaim(c.Context(), *req, userID, claimer.Name)
	if err != nil {
		return presenters.ErrorResponse(c, claimErrorStatus(err), domain.MessageFailedSubmitClaim, err)
	}

	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessSubmitClaim)
}

func (h *claimHandler) DecideClaim(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.DecideClaimRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecideClaim, err)
	}

	if err := h.claimService.DecideClaim(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, claimErrorStatus(err), domain.MessageFailedDecideClaim, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDecideClaim)
}

func (h *claimHandler) GetUserClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	claims, err := h.claimService.GetUserClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetClaims, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"claims": claims,
	}, fiber.StatusOK, domain.MessageSuccessGetClaims)
}

func (h *claimHandler) GetIncomingClaims(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	claims, err := h.claimService.GetIncomingClaims(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIncomingClaims, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"claims": claims,
	}, fiber.StatusOK, domain.MessageSuccessGetIncomingClaims)
}

func claimErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrReportNotFound), errors.Is(err, domain.ErrClaimNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedClaimAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrClaimTransaction):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}
