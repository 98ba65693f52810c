package domain

var (
	MessageFailedGetDismissal = "failed to check red-zone dismissal"
	MessageFailedDismiss      = "failed to dismiss red-zone alert"
	MessageFailedGetRedZone   = "failed to collect red-zone items"
)

type (
	DismissalResponse struct {
		Dismissed bool `json:"dismissed"`
	}

	// RedZoneItem is one urgent entry, flattened across the three kinds.
	RedZoneItem struct {
		Category  string `json:"category"`
		ID        uint   `json:"id"`
		Label     string `json:"label"`
		DateAdded string `json:"date_added"`
	}

	RedZoneResponse struct {
		Dismissed bool          `json:"dismissed"`
		Items     []RedZoneItem `json:"items"`
	}
)
