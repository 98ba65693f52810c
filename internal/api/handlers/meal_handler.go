package handlers

import (
	"freezer-tracker/domain"
	"freezer-tracker/internal/api/presenters"
	"freezer-tracker/pkg/meal"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealHandler interface {
		ListActive(c *fiber.Ctx) error
		ListConsumed(c *fiber.Ctx) error
		Names(c *fiber.Ctx) error
		Create(c *fiber.Ctx) error
		TakeOut(c *fiber.Ctx) error
		Update(c *fiber.Ctx) error
		PutBack(c *fiber.Ctx) error
		Delete(c *fiber.Ctx) error
	}

	mealHandler struct {
		mealService meal.MealService
		validator   *validator.Validate
	}
)

func NewMealHandler(mealService meal.MealService, validator *validator.Validate) MealHandler {
	return &mealHandler{
		mealService: mealService,
		validator:   validator,
	}
}

func (h *mealHandler) ListActive(c *fiber.Ctx) error {
	items, err := h.mealService.ListActive(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetMeals, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *mealHandler) ListConsumed(c *fiber.Ctx) error {
	items, err := h.mealService.ListConsumed(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetMeals, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *mealHandler) Names(c *fiber.Ctx) error {
	names, err := h.mealService.Names(c.Context())
	if err != nil {
		return respondError(c, domain.MessageFailedGetMeals, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, names)
}

// Create responds with the array of created rows; quantity > 1 yields several.
func (h *mealHandler) Create(c *fiber.Ctx) error {
	req := new(domain.CreateMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedCreateMeal, err)
	}

	items, err := h.mealService.Create(c.Context(), *req)
	if err != nil {
		return respondError(c, domain.MessageFailedCreateMeal, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusCreated, items)
}

func (h *mealHandler) TakeOut(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedTakeOut, err)
	}
	if err := h.mealService.TakeOut(c.Context(), id); err != nil {
		return respondError(c, domain.MessageFailedTakeOut, err)
	}
	return presenters.OperationOK(c)
}

func (h *mealHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateMeal, err)
	}

	req := new(domain.UpdateMealRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return respondError(c, domain.MessageFailedUpdateMeal, err)
	}

	item, err := h.mealService.Update(c.Context(), id, *req)
	if err != nil {
		return respondError(c, domain.MessageFailedUpdateMeal, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, item)
}

func (h *mealHandler) PutBack(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedPutBack, err)
	}
	if err := h.mealService.PutBack(c.Context(), id); err != nil {
		return respondError(c, domain.MessageFailedPutBack, err)
	}
	return presenters.OperationOK(c)
}

func (h *mealHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, domain.MessageFailedDeleteMeal, err)
	}
	if err := h.mealService.Delete(c.Context(), id); err != nil {
		return respondError(c, domain.MessageFailedDeleteMeal, err)
	}
	return presenters.OperationOK(c)
}
