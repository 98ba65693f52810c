package freshness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var poultry = Thresholds{FreshDays: 90, GoodDays: 180, UseSoonDays: 270}

func TestClassify(t *testing.T) {
	cases := []struct {
		ageDays int
		want    Status
	}{
		{0, StatusFresh},
		{20, StatusFresh},
		{90, StatusFresh},
		{91, StatusGood},
		{100, StatusGood},
		{180, StatusGood},
		{181, StatusUseSoon},
		{200, StatusUseSoon},
		{270, StatusUseSoon},
		{271, StatusRed},
		{300, StatusRed},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.ageDays, poultry), "age %d days", c.ageDays)
	}
}

func TestClassifyNeverSkipsBackwards(t *testing.T) {
	rank := map[Status]int{StatusFresh: 0, StatusGood: 1, StatusUseSoon: 2, StatusRed: 3}

	prev := StatusFresh
	for age := 0; age <= 400; age++ {
		got := Classify(age, poultry)
		assert.GreaterOrEqual(t, rank[got], rank[prev], "status regressed at age %d", age)
		prev = got
	}
}

func TestClassifyDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.Local)

	status, err := ClassifyDate("2026-03-10", now, poultry)
	require.NoError(t, err)
	assert.Equal(t, StatusFresh, status)

	status, err = ClassifyDate("2025-01-01", now, poultry)
	require.NoError(t, err)
	assert.Equal(t, StatusRed, status)

	_, err = ClassifyDate("not-a-date", now, poultry)
	assert.Error(t, err)
}

func TestClassifyDateIgnoresTimeOfDay(t *testing.T) {
	// 90 days after 2026-01-01 is 2026-04-01; late evening must not push the
	// item over the threshold a day early.
	lateEvening := time.Date(2026, 4, 1, 23, 59, 0, 0, time.Local)

	status, err := ClassifyDate("2026-01-01", lateEvening, poultry)
	require.NoError(t, err)
	assert.Equal(t, StatusFresh, status)
}
