package domain

import "time"

var (
	MessageFailedCreateMilk = "failed to add breast milk entry"
	MessageFailedUpdateMilk = "failed to update breast milk entry"
	MessageFailedDeleteMilk = "failed to delete breast milk entry"
	MessageFailedGetMilk    = "failed to retrieve breast milk entries"
)

type (
	CreateMilkRequest struct {
		DateExpressed string  `json:"date_expressed" validate:"required,datetime=2006-01-02"`
		DateAdded     string  `json:"date_added" validate:"required,datetime=2006-01-02"`
		VolumeML      int     `json:"volume_ml" validate:"required,gt=0"`
		Comment       *string `json:"comment"`
	}

	UpdateMilkRequest struct {
		DateExpressed *string `json:"date_expressed" validate:"omitempty,datetime=2006-01-02"`
		DateAdded     *string `json:"date_added" validate:"omitempty,datetime=2006-01-02"`
		VolumeML      *int    `json:"volume_ml" validate:"omitempty,gt=0"`
		Comment       *string `json:"comment"`
	}

	BreastMilkResponse struct {
		ID            uint      `json:"id"`
		DateExpressed string    `json:"date_expressed"`
		VolumeML      int       `json:"volume_ml"`
		DateAdded     string    `json:"date_added"`
		Comment       *string   `json:"comment"`
		DateRemoved   *string   `json:"date_removed"`
		CreatedAt     time.Time `json:"created_at"`

		Freshness        string `json:"freshness,omitempty"`
		FreshnessWarning bool   `json:"freshness_warning,omitempty"`
	}
)
