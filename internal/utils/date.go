package utils

import (
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// LocalDateString renders t as a YYYY-MM-DD string in t's location. All
// day-boundary decisions in the application go through local calendar dates,
// never elapsed wall-clock hours.
func LocalDateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string in the given location.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, dateStr, loc)
}

// DaysSince returns the number of whole calendar days between dateStr and now,
// both truncated to local midnight first. An item added at 23:59 is one day
// old a minute later. Rounding absorbs DST transitions that make a calendar
// day shorter or longer than 24h.
func DaysSince(dateStr string, now time.Time) (int, error) {
	then, err := ParseDate(dateStr, now.Location())
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(today.Sub(then).Hours() / 24)), nil
}
