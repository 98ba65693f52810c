package domain

import "errors"

var (
	MessageFailedBodyRequest = "failed to parse request body"
	MessageFailedExport      = "failed to generate spreadsheet export"

	ErrItemNotFound   = errors.New("item not found")
	ErrAlreadyRemoved = errors.New("item already removed")
	ErrNotRemoved     = errors.New("item not removed")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrMissingField   = errors.New("missing required field")
)
