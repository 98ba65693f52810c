package handlers

import (
	"freezer-tracker/domain"
	"freezer-tracker/internal/api/presenters"
	"freezer-tracker/pkg/alert"

	"github.com/gofiber/fiber/v2"
)

type (
	AlertHandler interface {
		Dismissed(c *fiber.Ctx) error
		Dismiss(c *fiber.Ctx) error
		RedZone(c *fiber.Ctx) error
	}

	alertHandler struct {
		alertService alert.AlertService
	}
)

func NewAlertHandler(alertService alert.AlertService) AlertHandler {
	return &alertHandler{alertService: alertService}
}

func (h *alertHandler) Dismissed(c *fiber.Ctx) error {
	dismissed, err := h.alertService.IsDismissedToday(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetDismissal, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, domain.DismissalResponse{Dismissed: dismissed})
}

func (h *alertHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.alertService.DismissToday(c.Context()); err != nil {
		return respondError(c, domain.MessageFailedDismiss, err)
	}
	return presenters.OperationOK(c)
}

func (h *alertHandler) RedZone(c *fiber.Ctx) error {
	res, err := h.alertService.RedZone(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetRedZone, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}
