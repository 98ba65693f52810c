package handlers

import (
	"freezer-tracker/domain"
	"freezer-tracker/internal/api/presenters"
	"freezer-tracker/pkg/freshness"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FreshnessHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateSetting(c *fiber.Ctx) error
	}

	freshnessHandler struct {
		freshnessService freshness.FreshnessService
		validator        *validator.Validate
	}
)

func NewFreshnessHandler(freshnessService freshness.FreshnessService, validator *validator.Validate) FreshnessHandler {
	return &freshnessHandler{
		freshnessService: freshnessService,
		validator:        validator,
	}
}

func (h *freshnessHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.freshnessService.GetSettings(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetSettings, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, settings)
}

func (h *freshnessHandler) UpdateSetting(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateSetting, err)
	}

	req := new(domain.UpdateFreshnessSettingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedUpdateSetting, err)
	}

	setting, err := h.freshnessService.UpdateSetting(c.Context(), id, *req)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateSetting, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, setting)
}
