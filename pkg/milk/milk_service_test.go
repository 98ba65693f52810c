package milk

import (
	"context"
	"testing"

	"freezer-tracker/domain"
	"freezer-tracker/internal/testdb"
	"freezer-tracker/pkg/freshness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) MilkService {
	t.Helper()
	db := testdb.New(t)
	freshnessService := freshness.NewFreshnessService(freshness.NewFreshnessRepository(db), zap.NewNop())
	return NewMilkService(NewMilkRepository(db), freshnessService)
}

func TestCreateAndList(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	comment := "  left pouch  "
	created, err := svc.Create(ctx, domain.CreateMilkRequest{
		DateExpressed: "2026-08-09",
		DateAdded:     "2026-08-10",
		VolumeML:      150,
		Comment:       &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, 150, created.VolumeML)
	assert.Equal(t, "2026-08-09", created.DateExpressed)
	require.NotNil(t, created.Comment)
	assert.Equal(t, "left pouch", *created.Comment)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, created.ID, active[0].ID)
}

func TestTakeOutAndPutBack(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateMilkRequest{
		DateExpressed: "2026-08-09",
		DateAdded:     "2026-08-10",
		VolumeML:      120,
	})
	require.NoError(t, err)

	require.NoError(t, svc.TakeOut(ctx, created.ID))
	assert.ErrorIs(t, svc.TakeOut(ctx, created.ID), domain.ErrItemNotFound)

	consumed, err := svc.ListConsumed(ctx)
	require.NoError(t, err)
	require.Len(t, consumed, 1)
	require.NotNil(t, consumed[0].DateRemoved)

	require.NoError(t, svc.PutBack(ctx, created.ID))
	assert.ErrorIs(t, svc.PutBack(ctx, created.ID), domain.ErrNotRemoved)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestUpdateVolume(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateMilkRequest{
		DateExpressed: "2026-08-09",
		DateAdded:     "2026-08-10",
		VolumeML:      100,
	})
	require.NoError(t, err)

	volume := 180
	updated, err := svc.Update(ctx, created.ID, domain.UpdateMilkRequest{VolumeML: &volume})
	require.NoError(t, err)
	assert.Equal(t, 180, updated.VolumeML)
	assert.Equal(t, "2026-08-09", updated.DateExpressed)

	_, err = svc.Update(ctx, 9999, domain.UpdateMilkRequest{VolumeML: &volume})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDeleteMilk(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateMilkRequest{
		DateExpressed: "2026-08-09",
		DateAdded:     "2026-08-10",
		VolumeML:      100,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrItemNotFound)
}
