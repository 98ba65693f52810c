package stats

import (
	"context"
	"testing"

	"freezer-tracker/entities"
	"freezer-tracker/internal/testdb"
	"freezer-tracker/pkg/meal"
	"freezer-tracker/pkg/milk"
	"freezer-tracker/pkg/rawfood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T) (StatsService, *gorm.DB) {
	t.Helper()
	db := testdb.New(t)
	svc := NewStatsService(
		rawfood.NewRawFoodRepository(db),
		meal.NewMealRepository(db),
		milk.NewMilkRepository(db),
	)
	return svc, db
}

func removed(date string) *string { return &date }

func TestGetStatsEmptyFreezer(t *testing.T) {
	svc, _ := newService(t)

	res, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.RawFood.InFreezerKg)
	assert.Zero(t, res.RawFood.InFreezerPieces)
	assert.Zero(t, res.PreparedMeals.BagsInFreezer)
	assert.Zero(t, res.BreastMilk.InFreezerML)
}

func TestGetStatsKeepsUnitsApart(t *testing.T) {
	svc, db := newService(t)

	items := []entities.RawFoodItem{
		{SubCategory: "Poultry", Name: "Chicken", Amount: 1.5, MeasuringUnit: entities.UnitKg,
			Lifecycle: entities.Lifecycle{DateAdded: "2026-08-01"}},
		{SubCategory: "Red Meat", Name: "Steak", Amount: 0.5, MeasuringUnit: entities.UnitKg,
			Lifecycle: entities.Lifecycle{DateAdded: "2026-08-02"}},
		{SubCategory: "Fruits", Name: "Bananas", Amount: 6, MeasuringUnit: entities.UnitPieces,
			Lifecycle: entities.Lifecycle{DateAdded: "2026-08-03"}},
		{SubCategory: "Poultry", Name: "Wings", Amount: 2, MeasuringUnit: entities.UnitKg,
			Lifecycle: entities.Lifecycle{DateAdded: "2026-07-01", DateRemoved: removed("2026-08-05")}},
		{SubCategory: "Fruits", Name: "Mango", Amount: 3, MeasuringUnit: entities.UnitPieces,
			Lifecycle: entities.Lifecycle{DateAdded: "2026-07-02", DateRemoved: removed("2026-08-05")}},
	}
	require.NoError(t, db.Create(&items).Error)

	res, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 2.0, res.RawFood.InFreezerKg, 1e-9)
	assert.InDelta(t, 6.0, res.RawFood.InFreezerPieces, 1e-9)
	assert.InDelta(t, 2.0, res.RawFood.ConsumedKg, 1e-9)
	assert.InDelta(t, 3.0, res.RawFood.ConsumedPieces, 1e-9)
}

func TestGetStatsMealsAndMilk(t *testing.T) {
	svc, db := newService(t)

	meals := []entities.PreparedMealItem{
		{Name: "Bolognese", Portions: 2, Lifecycle: entities.Lifecycle{DateAdded: "2026-08-01"}},
		{Name: "Bolognese", Portions: 2, Lifecycle: entities.Lifecycle{DateAdded: "2026-08-01"}},
		{Name: "Chili", Portions: 4, Lifecycle: entities.Lifecycle{DateAdded: "2026-07-01", DateRemoved: removed("2026-08-05")}},
	}
	require.NoError(t, db.Create(&meals).Error)

	bags := []entities.BreastMilkItem{
		{DateExpressed: "2026-08-01", VolumeML: 150, Lifecycle: entities.Lifecycle{DateAdded: "2026-08-01"}},
		{DateExpressed: "2026-08-02", VolumeML: 100, Lifecycle: entities.Lifecycle{DateAdded: "2026-08-02"}},
		{DateExpressed: "2026-07-01", VolumeML: 120, Lifecycle: entities.Lifecycle{DateAdded: "2026-07-01", DateRemoved: removed("2026-08-05")}},
	}
	require.NoError(t, db.Create(&bags).Error)

	res, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, res.PreparedMeals.BagsInFreezer)
	assert.EqualValues(t, 4, res.PreparedMeals.PortionsInFreezer)
	assert.EqualValues(t, 4, res.PreparedMeals.PortionsConsumed)
	assert.EqualValues(t, 250, res.BreastMilk.InFreezerML)
	assert.EqualValues(t, 120, res.BreastMilk.ConsumedML)
}
