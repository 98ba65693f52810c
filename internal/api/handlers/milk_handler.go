package handlers

import (
	"freezer-tracker/domain"
	"freezer-tracker/internal/api/presenters"
	"freezer-tracker/pkg/milk"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MilkHandler interface {
		ListActive(c *fiber.Ctx) error
		ListConsumed(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		TakeOut(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		PutBack(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	milkHandler struct {
		milkService milk.MilkService
		validator   *validator.Validate
	}
)

func NewMilkHandler(milkService milk.MilkService, validator *validator.Validate) MilkHandler {
	return &milkHandler{
		milkService: milkService,
		validator:   validator,
	}
}

func (h *milkHandler) ListActive(c *fiber.Ctx) error {
	items, err := h.milkService.ListActive(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetMilk, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *milkHandler) ListConsumed(c *fiber.Ctx) error {
	items, err := h.milkService.ListConsumed(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetMilk, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *milkHandler) Create(c *fiber.Ctx) error {
	req := new(domain.CreateMilkRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedCreateMilk, err)
	}

	item, err := h.milkService.Create(c.Context(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedCreateMilk, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, item)
}

func (h *milkHandler) TakeOut(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedTakeOut, err)
	}
	if err := h.milkService.TakeOut(c.Context(), id); err != nil {
		return respondError(c, domain.MessageFailedTakeOut, err)
	}
	return presenters.OperationOK(c)
}

func (h *milkHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateMilk, err)
	}

	req := new(domain.UpdateMilkRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedUpdateMilk, err)
	}

	item, err := h.milkService.Update(c.Context(), id, *req)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateMilk, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *milkHandler) PutBack(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedPutBack, err)
	}
	if err := h.milkService.PutBack(c.Context(), id); err != nil {
		return respondError(c, domain.MessageFailedPutBack, err)
	}
	return presenters.OperationOK(c)
}

func (h *milkHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedDeleteMilk, err)
	}
	if err := h.milkService.Delete(c.Context(), id); err != nil {
		return respondError(c, domain.MessageFailedDeleteMilk, err)
	}
	return presenters.OperationOK(c)
}
