package freshness

import (
	"context"
	"testing"
	"time"

	"freezer-tracker/domain"
	"freezer-tracker/entities"
	"freezer-tracker/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) FreshnessService {
	t.Helper()
	return NewFreshnessService(NewFreshnessRepository(testdb.New(t)), zap.NewNop())
}

func TestGetSettingsSeeded(t *testing.T) {
	svc := newService(t)

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Len(t, settings, 9)

	byCategory := map[string]int{}
	for _, s := range settings {
		byCategory[s.Category]++
	}
	assert.Equal(t, 7, byCategory[entities.CategoryRawFood])
	assert.Equal(t, 1, byCategory[entities.CategoryPreparedMeals])
	assert.Equal(t, 1, byCategory[entities.CategoryBreastMilk])
}

func TestUpdateSetting(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)

	updated, err := svc.UpdateSetting(ctx, settings[0].ID, domain.UpdateFreshnessSettingRequest{
		FreshDays:   10,
		GoodDays:    20,
		UseSoonDays: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.FreshDays)
	assert.Equal(t, 20, updated.GoodDays)
	assert.Equal(t, 30, updated.UseSoonDays)

	_, err = svc.UpdateSetting(ctx, 9999, domain.UpdateFreshnessSettingRequest{
		FreshDays:   1,
		GoodDays:    2,
		UseSoonDays: 3,
	})
	assert.ErrorIs(t, err, domain.ErrSettingNotFound)
}

func TestStatusForFallsBackToOther(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	now := time.Now()

	// "Wild Game" has no row of its own; the raw-food "Other" thresholds
	// (90/180/270 by default) apply.
	sub := "Wild Game"
	dateAdded := now.AddDate(0, 0, -100).Format("2006-01-02")

	status, warning := svc.StatusFor(ctx, entities.CategoryRawFood, &sub, dateAdded, now)
	assert.Equal(t, StatusGood, status)
	assert.False(t, warning)
}

func TestStatusForUnresolvableUsesFallback(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	now := time.Now()

	dateAdded := now.AddDate(0, 0, -500).Format("2006-01-02")

	status, warning := svc.StatusFor(ctx, "condiments", nil, dateAdded, now)
	assert.Equal(t, StatusFallback, status)
	assert.True(t, warning)
}

func TestStatusForBadDateUsesFallback(t *testing.T) {
	svc := newService(t)

	status, warning := svc.StatusFor(context.Background(), entities.CategoryPreparedMeals, nil, "garbage", time.Now())
	assert.Equal(t, StatusFallback, status)
	assert.True(t, warning)
}
