package domain

import "time"

var (
	MessageFailedCreateMeal = "failed to add prepared meal"
	MessageFailedUpdateMeal = "failed to update prepared meal"
	MessageFailedDeleteMeal = "failed to delete prepared meal"
	MessageFailedGetMeals   = "failed to retrieve prepared meals"
)

type (
	// CreateMealRequest models "N identical bags packed at once": Quantity
	// independent rows are inserted, each with the same fields.
	CreateMealRequest struct {
		Name      string  `json:"name" validate:"required"`
		Portions  int     `json:"portions" validate:"required,gt=0"`
		DateAdded string  `json:"date_added" validate:"required,datetime=2006-01-02"`
		Comment   *string `json:"comment"`
		Quantity  int     `json:"quantity" validate:"omitempty,gt=0"`
	}

	UpdateMealRequest struct {
		Name      *string `json:"name" validate:"omitempty"`
		Portions  *int    `json:"portions" validate:"omitempty,gt=0"`
		DateAdded *string `json:"date_added" validate:"omitempty,datetime=2006-01-02"`
		Comment   *string `json:"comment"`
	}

	PreparedMealResponse struct {
		ID          uint      `json:"id"`
		Name        string    `json:"name"`
		Portions    int       `json:"portions"`
		DateAdded   string    `json:"date_added"`
		Comment     *string   `json:"comment"`
		DateRemoved *string   `json:"date_removed"`
		CreatedAt   time.Time `json:"created_at"`

		Freshness        string `json:"freshness,omitempty"`
		FreshnessWarning bool   `json:"freshness_warning,omitempty"`
	}
)
