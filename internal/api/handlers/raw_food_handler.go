package handlers

import (
	"net/url"

	"freezer-tracker/domain"
	"freezer-tracker/internal/api/presenters"
	"freezer-tracker/pkg/rawfood"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RawFoodHandler interface {
		ListActive(c *fiber.Ctx) error
		ListConsumed(c *fiber.Ctx) error
		Names(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		TakeOut(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		PutBack(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	rawFoodHandler struct {
		rawFoodService rawfood.RawFoodService
		validator      *validator.Validate
	}
)

func NewRawFoodHandler(rawFoodService rawfood.RawFoodService, validator *validator.Validate) RawFoodHandler {
	return &rawFoodHandler{
		rawFoodService: rawFoodService,
		validator:      validator,
	}
}

func (h *rawFoodHandler) ListActive(c *fiber.Ctx) error {
	items, err := h.rawFoodService.ListActive(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetRawFood, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *rawFoodHandler) ListConsumed(c *fiber.Ctx) error {
	items, err := h.rawFoodService.ListConsumed(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetRawFood, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *rawFoodHandler) Names(c *fiber.Ctx) error {
	// sub-categories like "Fish/Seafood" arrive percent-encoded
	subCategory, err := url.PathUnescape(c.Params("subCategory"))
	if err != nil {
		subCategory = c.Params("subCategory")
	}

	names, err := h.rawFoodService.Names(c.Context(), subCategory)
	if err != nil {
		return respondError(c, domain.MessageFailedGetRawFood, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, names)
}

func (h *rawFoodHandler) Create(c *fiber.Ctx) error {
	req := new(domain.CreateRawFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedCreateRawFood, err)
	}

	item, err := h.rawFoodService.Create(c.Context(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedCreateRawFood, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, item)
}

func (h *rawFoodHandler) TakeOut(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedTakeOut, err)
	}

	req := new(domain.TakeOutRawFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedTakeOut, err)
	}

	if err := h.rawFoodService.TakeOut(c.Context(), id, req.AmountTaken); err != nil {
		return respondError(c, domain.MessageFailedTakeOut, err)
	}
	return presenters.OperationOK(c)
}

func (h *rawFoodHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateRawFood, err)
	}

	req := new(domain.UpdateRawFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedUpdateRawFood, err)
	}

	item, err := h.rawFoodService.Update(c.Context(), id, *req)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateRawFood, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *rawFoodHandler) PutBack(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedPutBack, err)
	}
	if err := h.rawFoodService.PutBack(c.Context(), id); err != nil {
		return respondError(c, domain.MessageFailedPutBack, err)
	}
	return presenters.OperationOK(c)
}

func (h *rawFoodHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedDeleteRawFood, err)
	}
	if err := h.rawFoodService.Delete(c.Context(), id); err != nil {
		return respondError(c, domain.MessageFailedDeleteRawFood, err)
	}
	return presenters.OperationOK(c)
}
