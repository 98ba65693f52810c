package handlers

import (
	"errors"
	"strconv"

	"freezer-tracker/domain"
	"freezer-tracker/internal/api/presenters"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondError translates service errors into the three-status taxonomy:
// validation 400, missing/state-mismatched target 404, everything else 500.
func respondError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrAlreadyRemoved),
		errors.Is(err, domain.ErrNotRemoved),
		errors.Is(err, domain.ErrSettingNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidAmount):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}

// parseID reads the :id path parameter. A non-numeric id targets nothing, so
// it maps to the not-found error rather than a parse failure.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, domain.ErrItemNotFound
	}
	return uint(id), nil
}
