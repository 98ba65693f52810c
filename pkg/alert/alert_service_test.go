package alert

import (
	"context"
	"testing"
	"time"

	"freezer-tracker/entities"
	"freezer-tracker/internal/testdb"
	"freezer-tracker/pkg/freshness"
	"freezer-tracker/pkg/meal"
	"freezer-tracker/pkg/milk"
	"freezer-tracker/pkg/rawfood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (AlertService, *gorm.DB) {
	t.Helper()
	db := testdb.New(t)
	freshnessService := freshness.NewFreshnessService(freshness.NewFreshnessRepository(db), zap.NewNop())
	svc := NewAlertService(
		NewDismissalRepository(db),
		rawfood.NewRawFoodRepository(db),
		meal.NewMealRepository(db),
		milk.NewMilkRepository(db),
		freshnessService,
	)
	return svc, db
}

func TestDismissalIsIdempotentPerDay(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	dismissed, err := svc.IsDismissedToday(ctx)
	require.NoError(t, err)
	assert.False(t, dismissed)

	require.NoError(t, svc.DismissToday(ctx))
	require.NoError(t, svc.DismissToday(ctx))

	dismissed, err = svc.IsDismissedToday(ctx)
	require.NoError(t, err)
	assert.True(t, dismissed)
}

func TestRedZoneCollectsExpiredItems(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	ancient := time.Now().AddDate(-2, 0, 0).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")

	require.NoError(t, db.Create(&entities.RawFoodItem{
		SubCategory:   "Poultry",
		Name:          "Forgotten chicken",
		Amount:        1,
		MeasuringUnit: entities.UnitKg,
		Lifecycle:     entities.Lifecycle{DateAdded: ancient},
	}).Error)
	require.NoError(t, db.Create(&entities.RawFoodItem{
		SubCategory:   "Poultry",
		Name:          "Fresh chicken",
		Amount:        1,
		MeasuringUnit: entities.UnitKg,
		Lifecycle:     entities.Lifecycle{DateAdded: today},
	}).Error)
	require.NoError(t, db.Create(&entities.BreastMilkItem{
		DateExpressed: ancient,
		VolumeML:      150,
		Lifecycle:     entities.Lifecycle{DateAdded: ancient},
	}).Error)

	res, err := svc.RedZone(ctx)
	require.NoError(t, err)
	assert.False(t, res.Dismissed)
	require.Len(t, res.Items, 2)

	labels := []string{res.Items[0].Label, res.Items[1].Label}
	assert.Contains(t, labels, "Forgotten chicken")
	assert.Contains(t, labels, "150 ml")
}

func TestRedZoneSuppressedAfterDismissal(t *testing.T) {
	svc, db := newService(t)
	ctx := context.Background()

	ancient := time.Now().AddDate(-2, 0, 0).Format("2006-01-02")
	require.NoError(t, db.Create(&entities.PreparedMealItem{
		Name:      "Ancient lasagna",
		Portions:  2,
		Lifecycle: entities.Lifecycle{DateAdded: ancient},
	}).Error)

	require.NoError(t, svc.DismissToday(ctx))

	res, err := svc.RedZone(ctx)
	require.NoError(t, err)
	assert.True(t, res.Dismissed)
	assert.Empty(t, res.Items)
}
