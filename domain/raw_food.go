package domain

import "time"

var (
	MessageFailedCreateRawFood = "failed to add raw food item"
	MessageFailedUpdateRawFood = "failed to update raw food item"
	MessageFailedDeleteRawFood = "failed to delete raw food item"
	MessageFailedGetRawFood    = "failed to retrieve raw food items"
	MessageFailedTakeOut       = "failed to take out item"
	MessageFailedPutBack       = "failed to put back item"
)

type (
	CreateRawFoodRequest struct {
		SubCategory   string  `json:"sub_category" validate:"required,oneof='Poultry' 'Red Meat' 'Fish/Seafood' 'Ground Meat' 'Vegetables' 'Fruits' 'Other'"`
		Name          string  `json:"name" validate:"required"`
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		MeasuringUnit string  `json:"measuring_unit" validate:"required,oneof=kg pieces"`
		DateAdded     string  `json:"date_added" validate:"required,datetime=2006-01-02"`
		Comment       *string `json:"comment"`
	}

	UpdateRawFoodRequest struct {
		SubCategory   *string  `json:"sub_category" validate:"omitempty,oneof='Poultry' 'Red Meat' 'Fish/Seafood' 'Ground Meat' 'Vegetables' 'Fruits' 'Other'"`
		Name          *string  `json:"name" validate:"omitempty"`
		Amount        *float64 `json:"amount" validate:"omitempty,gt=0"`
		MeasuringUnit *string  `json:"measuring_unit" validate:"omitempty,oneof=kg pieces"`
		DateAdded     *string  `json:"date_added" validate:"omitempty,datetime=2006-01-02"`
		Comment       *string  `json:"comment"`
	}

	TakeOutRawFoodRequest struct {
		AmountTaken float64 `json:"amount_taken" validate:"required,gt=0"`
	}

	RawFoodItemResponse struct {
		ID            uint      `json:"id"`
		SubCategory   string    `json:"sub_category"`
		Name          string    `json:"name"`
		Amount        float64   `json:"amount"`
		MeasuringUnit string    `json:"measuring_unit"`
		DateAdded     string    `json:"date_added"`
		Comment       *string   `json:"comment"`
		DateRemoved   *string   `json:"date_removed"`
		CreatedAt     time.Time `json:"created_at"`

		Freshness        string `json:"freshness,omitempty"`
		FreshnessWarning bool   `json:"freshness_warning,omitempty"`
	}
)
