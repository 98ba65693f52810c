package export

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"freezer-tracker/entities"
	"freezer-tracker/internal/testdb"
	"freezer-tracker/pkg/meal"
	"freezer-tracker/pkg/milk"
	"freezer-tracker/pkg/rawfood"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func newService(t *testing.T) (ExportService, *gorm.DB) {
	t.Helper()
	db := testdb.New(t)
	svc := NewExportService(
		rawfood.NewRawFoodRepository(db),
		meal.NewMealRepository(db),
		milk.NewMilkRepository(db),
	)
	return svc, db
}

func TestGenerateEmptyInventory(t *testing.T) {
	svc, _ := newService(t)

	content, filename, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, content)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, fmt.Sprintf("freezer-inventory-%s.xlsx", today), filename)
}

func TestGenerateWorkbookLayout(t *testing.T) {
	svc, db := newService(t)

	consumedOn := "2026-08-05"
	require.NoError(t, db.Create(&entities.RawFoodItem{
		SubCategory:   "Poultry",
		Name:          "Chicken thighs",
		Amount:        1.5,
		MeasuringUnit: entities.UnitKg,
		Lifecycle:     entities.Lifecycle{DateAdded: "2026-08-01"},
	}).Error)
	require.NoError(t, db.Create(&entities.PreparedMealItem{
		Name:      "Bolognese",
		Portions:  2,
		Lifecycle: entities.Lifecycle{DateAdded: "2026-07-01", DateRemoved: &consumedOn},
	}).Error)
	require.NoError(t, db.Create(&entities.BreastMilkItem{
		DateExpressed: "2026-08-01",
		VolumeML:      150,
		Lifecycle:     entities.Lifecycle{DateAdded: "2026-08-02"},
	}).Error)

	content, _, err := svc.Generate(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Summary", "Raw Food", "Prepared Meals", "Breast Milk"},
		f.GetSheetList(),
	)

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Contains(t, title, "Freezer Inventory")

	rows, err := f.GetRows("Raw Food")
	require.NoError(t, err)

	var found bool
	for _, row := range rows {
		for _, cell := range row {
			if cell == "Chicken thighs" {
				found = true
			}
		}
	}
	assert.True(t, found, "raw food sheet should list the stored item")
}
