package domain

import "errors"

var (
	MessageFailedGetSettings   = "failed to retrieve freshness settings"
	MessageFailedUpdateSetting = "failed to update freshness setting"

	ErrSettingNotFound = errors.New("freshness setting not found")
)

type UpdateFreshnessSettingRequest struct {
	FreshDays   int `json:"fresh_days" validate:"required,gt=0"`
	GoodDays    int `json:"good_days" validate:"required,gt=0"`
	UseSoonDays int `json:"use_soon_days" validate:"required,gt=0"`
}
