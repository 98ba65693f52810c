package freshness

import (
	"time"

	"freezer-tracker/internal/utils"
)

type Status string

const (
	StatusFresh   Status = "fresh"
	StatusGood    Status = "good"
	StatusUseSoon Status = "use_soon"
	StatusRed     Status = "red"
)

// StatusFallback is returned when no setting resolves for an item. It is the
// middle of the scale on purpose: "fresh" would mask spoilage and "red" would
// false-alarm.
const StatusFallback = StatusGood

// Thresholds are ascending whole-day limits: fresh < good < use_soon.
type Thresholds struct {
	FreshDays   int
	GoodDays    int
	UseSoonDays int
}

// Classify maps an item age in whole days onto the four-step scale.
func Classify(ageDays int, t Thresholds) Status {
	switch {
	case ageDays <= t.FreshDays:
		return StatusFresh
	case ageDays <= t.GoodDays:
		return StatusGood
	case ageDays <= t.UseSoonDays:
		return StatusUseSoon
	default:
		return StatusRed
	}
}

// ClassifyDate classifies a YYYY-MM-DD date_added against now, using local
// calendar days so the result never flips early around midnight.
func ClassifyDate(dateAdded string, now time.Time, t Thresholds) (Status, error) {
	age, err := utils.DaysSince(dateAdded, now)
	if err != nil {
		return StatusFallback, err
	}
	return Classify(age, t), nil
}
