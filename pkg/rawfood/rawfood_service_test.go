package rawfood

import (
	"context"
	"testing"
	"time"

	"freezer-tracker/domain"
	"freezer-tracker/internal/testdb"
	"freezer-tracker/internal/utils"
	"freezer-tracker/pkg/freshness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) RawFoodService {
	t.Helper()
	db := testdb.New(t)
	freshnessService := freshness.NewFreshnessService(freshness.NewFreshnessRepository(db), zap.NewNop())
	return NewRawFoodService(NewRawFoodRepository(db), freshnessService)
}

func ptr(s string) *string { return &s }

func createChicken(t *testing.T, svc RawFoodService, amount float64) domain.RawFoodItemResponse {
	t.Helper()
	item, err := svc.Create(context.Background(), domain.CreateRawFoodRequest{
		SubCategory:   "Poultry",
		Name:          "Chicken thighs",
		Amount:        amount,
		MeasuringUnit: "kg",
		DateAdded:     utils.LocalDateString(time.Now()),
	})
	require.NoError(t, err)
	return item
}

func TestCreateNormalizesFields(t *testing.T) {
	svc := newService(t)

	item, err := svc.Create(context.Background(), domain.CreateRawFoodRequest{
		SubCategory:   "Poultry",
		Name:          "  Chicken wings  ",
		Amount:        1.5,
		MeasuringUnit: "kg",
		DateAdded:     "2026-08-01",
		Comment:       ptr("   "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Chicken wings", item.Name)
	assert.Nil(t, item.Comment)
	assert.Nil(t, item.DateRemoved)
	assert.Equal(t, string(freshness.StatusFresh), item.Freshness)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), domain.CreateRawFoodRequest{
		SubCategory:   "Poultry",
		Name:          "   ",
		Amount:        1,
		MeasuringUnit: "kg",
		DateAdded:     "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestTakeOutPartialSplitsItem(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	item := createChicken(t, svc, 2.0)
	require.NoError(t, svc.TakeOut(ctx, item.ID, 0.5))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, item.ID, active[0].ID)
	assert.InDelta(t, 1.5, active[0].Amount, 1e-9)

	consumed, err := svc.ListConsumed(ctx)
	require.NoError(t, err)
	require.Len(t, consumed, 1)
	assert.NotEqual(t, item.ID, consumed[0].ID)
	assert.InDelta(t, 0.5, consumed[0].Amount, 1e-9)
	assert.Equal(t, item.Name, consumed[0].Name)
	require.NotNil(t, consumed[0].DateRemoved)
	assert.Equal(t, utils.LocalDateString(time.Now()), *consumed[0].DateRemoved)

	// The split never creates or destroys food.
	assert.InDelta(t, 2.0, active[0].Amount+consumed[0].Amount, 1e-9)
}

func TestTakeOutFullConsumesInPlace(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	item := createChicken(t, svc, 1.0)
	require.NoError(t, svc.TakeOut(ctx, item.ID, 1.0))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	consumed, err := svc.ListConsumed(ctx)
	require.NoError(t, err)
	require.Len(t, consumed, 1)
	assert.Equal(t, item.ID, consumed[0].ID)
	assert.InDelta(t, 1.0, consumed[0].Amount, 1e-9)
}

func TestTakeOutMoreThanAvailableConsumesAll(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	item := createChicken(t, svc, 1.0)
	require.NoError(t, svc.TakeOut(ctx, item.ID, 5.0))

	consumed, err := svc.ListConsumed(ctx)
	require.NoError(t, err)
	require.Len(t, consumed, 1)
	assert.InDelta(t, 1.0, consumed[0].Amount, 1e-9)
}

func TestTakeOutErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.TakeOut(ctx, 9999, 1), domain.ErrItemNotFound)
	assert.ErrorIs(t, svc.TakeOut(ctx, 9999, 0), domain.ErrInvalidAmount)

	item := createChicken(t, svc, 1.0)
	require.NoError(t, svc.TakeOut(ctx, item.ID, 1.0))
	assert.ErrorIs(t, svc.TakeOut(ctx, item.ID, 1.0), domain.ErrAlreadyRemoved)
}

func TestPutBack(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	item := createChicken(t, svc, 1.0)
	assert.ErrorIs(t, svc.PutBack(ctx, item.ID), domain.ErrNotRemoved)

	require.NoError(t, svc.TakeOut(ctx, item.ID, 1.0))
	require.NoError(t, svc.PutBack(ctx, item.ID))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Nil(t, active[0].DateRemoved)
}

func TestUpdateMergesFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	item := createChicken(t, svc, 2.0)

	amount := 3.5
	updated, err := svc.Update(ctx, item.ID, domain.UpdateRawFoodRequest{
		Name:   ptr("Chicken drumsticks"),
		Amount: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, "Chicken drumsticks", updated.Name)
	assert.InDelta(t, 3.5, updated.Amount, 1e-9)
	assert.Equal(t, item.SubCategory, updated.SubCategory)
	assert.Equal(t, item.DateAdded, updated.DateAdded)

	_, err = svc.Update(ctx, 9999, domain.UpdateRawFoodRequest{Name: ptr("nope")})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDelete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	item := createChicken(t, svc, 1.0)
	require.NoError(t, svc.Delete(ctx, item.ID))
	assert.ErrorIs(t, svc.Delete(ctx, item.ID), domain.ErrItemNotFound)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestNamesAreDistinctPerSubCategory(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, req := range []domain.CreateRawFoodRequest{
		{SubCategory: "Poultry", Name: "Chicken thighs", Amount: 1, MeasuringUnit: "kg", DateAdded: "2026-08-01"},
		{SubCategory: "Poultry", Name: "Chicken thighs", Amount: 2, MeasuringUnit: "kg", DateAdded: "2026-08-02"},
		{SubCategory: "Poultry", Name: "Turkey breast", Amount: 1, MeasuringUnit: "kg", DateAdded: "2026-08-03"},
		{SubCategory: "Red Meat", Name: "Beef shank", Amount: 1, MeasuringUnit: "kg", DateAdded: "2026-08-04"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	names, err := svc.Names(ctx, "Poultry")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Chicken thighs", "Turkey breast"}, names)
}
