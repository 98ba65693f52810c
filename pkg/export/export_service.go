package export

import (
	"context"
	"fmt"
	"time"

	"freezer-tracker/entities"
	"freezer-tracker/internal/utils"
	"freezer-tracker/pkg/meal"
	"freezer-tracker/pkg/milk"
	"freezer-tracker/pkg/rawfood"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type (
	// ExportService renders a full inventory snapshot as an xlsx workbook.
	// The workbook is built entirely in memory; on any error nothing is
	// emitted, so a download never contains a truncated document.
	ExportService interface {
		Generate(ctx context.Context) ([]byte, string, error)
	}

	exportService struct {
		rawFoodRepository rawfood.RawFoodRepository
		mealRepository    meal.MealRepository
		milkRepository    milk.MilkRepository
	}

	styles struct {
		title          int
		subHeader      int
		header         int
		consumedHeader int
		consumed       int
	}
)

func NewExportService(
	rawFoodRepository rawfood.RawFoodRepository,
	mealRepository meal.MealRepository,
	milkRepository milk.MilkRepository,
) ExportService {
	return &exportService{
		rawFoodRepository: rawFoodRepository,
		mealRepository:    mealRepository,
		milkRepository:    milkRepository,
	}
}

func (s *exportService) Generate(ctx context.Context) ([]byte, string, error) {
	now := time.Now()

	rawActive, err := s.rawFoodRepository.ListActive(ctx)
	if err != nil {
		return nil, "", err
	}
	rawConsumed, err := s.rawFoodRepository.ListConsumed(ctx)
	if err != nil {
		return nil, "", err
	}
	mealsActive, err := s.mealRepository.ListActive(ctx)
	if err != nil {
		return nil, "", err
	}
	mealsConsumed, err := s.mealRepository.ListConsumed(ctx)
	if err != nil {
		return nil, "", err
	}
	milkActive, err := s.milkRepository.ListActive(ctx)
	if err != nil {
		return nil, "", err
	}
	milkConsumed, err := s.milkRepository.ListConsumed(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, "", err
	}

	if err := s.writeSummary(f, st, now, rawActive, rawConsumed, mealsActive, mealsConsumed, milkActive, milkConsumed); err != nil {
		return nil, "", err
	}
	if err := s.writeRawFoodSheet(f, st, now, rawActive, rawConsumed); err != nil {
		return nil, "", err
	}
	if err := s.writeMealSheet(f, st, now, mealsActive, mealsConsumed); err != nil {
		return nil, "", err
	}
	if err := s.writeMilkSheet(f, st, now, milkActive, milkConsumed); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("freezer-inventory-%s.xlsx", utils.LocalDateString(now))
	return buf.Bytes(), filename, nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	if st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "0369A1"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.subHeader, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "1E3A5F"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E0F2FE"}},
	}); err != nil {
		return st, err
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0EA5E9"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.consumedHeader, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"10B981"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.consumed, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "6B7280"},
	}); err != nil {
		return st, err
	}
	return st, nil
}

func (s *exportService) writeSummary(
	f *excelize.File, st styles, now time.Time,
	rawActive, rawConsumed []entities.RawFoodItem,
	mealsActive, mealsConsumed []entities.PreparedMealItem,
	milkActive, milkConsumed []entities.BreastMilkItem,
) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Freezer Inventory Summary")
	f.SetCellStyle(sheet, "A1", "D1", st.title)
	f.SetRowHeight(sheet, 1, 30)

	if err := f.MergeCell(sheet, "A2", "D2"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Generated: %s", now.Format("2006-01-02 15:04")))

	sumRawAmount := func(items []entities.RawFoodItem, unit string) float64 {
		var total float64
		for _, item := range items {
			if item.MeasuringUnit == unit {
				total += item.Amount
			}
		}
		return total
	}
	sumPortions := func(items []entities.PreparedMealItem) int {
		var total int
		for _, item := range items {
			total += item.Portions
		}
		return total
	}
	sumVolume := func(items []entities.BreastMilkItem) int {
		var total int
		for _, item := range items {
			total += item.VolumeML
		}
		return total
	}

	row := 4
	section := func(name string, lines [][3]string) {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, cell, name)
		f.SetCellStyle(sheet, cell, fmt.Sprintf("D%d", row), st.subHeader)
		row++
		for _, line := range lines {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line[0])
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line[1])
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line[2])
			row++
		}
		row++
	}

	section("Raw Food", [][3]string{
		{"In Freezer:", fmt.Sprintf("%.1f kg", sumRawAmount(rawActive, entities.UnitKg)), fmt.Sprintf("%.0f pieces", sumRawAmount(rawActive, entities.UnitPieces))},
		{"Consumed:", fmt.Sprintf("%.1f kg", sumRawAmount(rawConsumed, entities.UnitKg)), fmt.Sprintf("%.0f pieces", sumRawAmount(rawConsumed, entities.UnitPieces))},
	})
	section("Prepared Meals", [][3]string{
		{"In Freezer:", fmt.Sprintf("%d bags", len(mealsActive)), fmt.Sprintf("%d portions", sumPortions(mealsActive))},
		{"Consumed:", fmt.Sprintf("%d bags", len(mealsConsumed)), fmt.Sprintf("%d portions", sumPortions(mealsConsumed))},
	})
	section("Breast Milk", [][3]string{
		{"In Freezer:", fmt.Sprintf("%d ml", sumVolume(milkActive)), fmt.Sprintf("%d bags", len(milkActive))},
		{"Consumed:", fmt.Sprintf("%d ml", sumVolume(milkConsumed)), fmt.Sprintf("%d bags", len(milkConsumed))},
	})

	return f.SetColWidth(sheet, "A", "D", 18)
}

func (s *exportService) writeRawFoodSheet(f *excelize.File, st styles, now time.Time, active, consumed []entities.RawFoodItem) error {
	const sheet = "Raw Food"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	activeRows := make([][]interface{}, 0, len(active))
	for _, item := range active {
		activeRows = append(activeRows, []interface{}{
			item.SubCategory, item.Name, item.Amount, item.MeasuringUnit,
			item.DateAdded, daysStored(item.DateAdded, now), item.Note(),
		})
	}
	consumedRows := make([][]interface{}, 0, len(consumed))
	for _, item := range consumed {
		consumedRows = append(consumedRows, []interface{}{
			item.SubCategory, item.Name, item.Amount, item.MeasuringUnit,
			item.DateAdded, removedDate(item), item.Note(),
		})
	}

	if err := writeCategorySheet(f, st, sheet, "Raw Food Inventory",
		[]string{"Sub-Category", "Name", "Amount", "Unit", "Date Added", "Days Stored", "Comment"},
		[]string{"Sub-Category", "Name", "Amount", "Unit", "Date Added", "Date Removed", "Comment"},
		activeRows, consumedRows,
	); err != nil {
		return err
	}

	f.SetColWidth(sheet, "A", "A", 15)
	f.SetColWidth(sheet, "B", "B", 25)
	f.SetColWidth(sheet, "C", "D", 10)
	f.SetColWidth(sheet, "E", "F", 14)
	return f.SetColWidth(sheet, "G", "G", 30)
}

func (s *exportService) writeMealSheet(f *excelize.File, st styles, now time.Time, active, consumed []entities.PreparedMealItem) error {
	const sheet = "Prepared Meals"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	activeRows := make([][]interface{}, 0, len(active))
	for _, item := range active {
		activeRows = append(activeRows, []interface{}{
			item.Name, item.Portions, item.DateAdded, daysStored(item.DateAdded, now), item.Note(),
		})
	}
	consumedRows := make([][]interface{}, 0, len(consumed))
	for _, item := range consumed {
		consumedRows = append(consumedRows, []interface{}{
			item.Name, item.Portions, item.DateAdded, removedDate(item), item.Note(),
		})
	}

	if err := writeCategorySheet(f, st, sheet, "Prepared Meals Inventory",
		[]string{"Name", "Portions", "Date Added", "Days Stored", "Comment"},
		[]string{"Name", "Portions", "Date Added", "Date Removed", "Comment"},
		activeRows, consumedRows,
	); err != nil {
		return err
	}

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetColWidth(sheet, "C", "D", 14)
	return f.SetColWidth(sheet, "E", "E", 35)
}

func (s *exportService) writeMilkSheet(f *excelize.File, st styles, now time.Time, active, consumed []entities.BreastMilkItem) error {
	const sheet = "Breast Milk"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	activeRows := make([][]interface{}, 0, len(active))
	for _, item := range active {
		activeRows = append(activeRows, []interface{}{
			item.VolumeML, item.DateExpressed, item.DateAdded, daysStored(item.DateAdded, now), item.Note(),
		})
	}
	consumedRows := make([][]interface{}, 0, len(consumed))
	for _, item := range consumed {
		consumedRows = append(consumedRows, []interface{}{
			item.VolumeML, item.DateExpressed, item.DateAdded, removedDate(item), item.Note(),
		})
	}

	if err := writeCategorySheet(f, st, sheet, "Breast Milk Inventory",
		[]string{"Volume (ml)", "Date Expressed", "Date Added", "Days Stored", "Comment"},
		[]string{"Volume (ml)", "Date Expressed", "Date Added", "Date Removed", "Comment"},
		activeRows, consumedRows,
	); err != nil {
		return err
	}

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 16)
	f.SetColWidth(sheet, "C", "D", 14)
	return f.SetColWidth(sheet, "E", "E", 35)
}

// writeCategorySheet lays out one kind's sheet: a title, the active section
// with its header row, then the consumed section below it.
func writeCategorySheet(
	f *excelize.File, st styles, sheet, title string,
	activeHeaders, consumedHeaders []string,
	activeRows, consumedRows [][]interface{},
) error {
	lastCol, err := excelize.ColumnNumberToName(len(activeHeaders))
	if err != nil {
		return err
	}

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", title)
	f.SetCellStyle(sheet, "A1", lastCol+"1", st.title)
	f.SetRowHeight(sheet, 1, 28)

	row := 3
	row, err = writeSection(f, st, sheet, lastCol, row, "Currently in Freezer", activeHeaders, activeRows, st.header, 0)
	if err != nil {
		return err
	}
	if len(activeRows) == 0 {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "No items in freezer")
		row++
	}
	row += 2

	_, err = writeSection(f, st, sheet, lastCol, row, "Consumed Items", consumedHeaders, consumedRows, st.consumedHeader, st.consumed)
	return err
}

func writeSection(
	f *excelize.File, st styles, sheet, lastCol string, row int,
	label string, headers []string, rows [][]interface{},
	headerStyle, dataStyle int,
) (int, error) {
	cell := fmt.Sprintf("A%d", row)
	f.SetCellValue(sheet, cell, label)
	f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, row), st.subHeader)
	if err := f.MergeCell(sheet, cell, fmt.Sprintf("%s%d", lastCol, row)); err != nil {
		return row, err
	}
	row++

	for i, header := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return row, err
		}
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), header)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), headerStyle)
	f.SetRowHeight(sheet, row, 22)
	row++

	for _, values := range rows {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return row, err
		}
		if dataStyle != 0 {
			f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, row), dataStyle)
		}
		row++
	}
	return row, nil
}

func daysStored(dateAdded string, now time.Time) int {
	days, err := utils.DaysSince(dateAdded, now)
	if err != nil {
		return 0
	}
	return days
}

func removedDate(record entities.LifecycleRecord) string {
	if removed := record.Removed(); removed != nil {
		return *removed
	}
	return ""
}
