package utils

import "strings"

// TrimComment normalizes an optional free-text field: surrounding whitespace
// is stripped and an effectively-empty comment becomes NULL.
func TrimComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
