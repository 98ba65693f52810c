package migration

import (
	"freezer-tracker/entities"

	"gorm.io/gorm"
)

// defaultSettings seeds the thresholds a fresh install starts with. Existing
// rows are never overwritten, so user edits survive restarts.
func defaultSettings() []entities.FreshnessSetting {
	return []entities.FreshnessSetting{
		{Category: entities.CategoryRawFood, SubCategory: ptr("Poultry"), FreshDays: 90, GoodDays: 180, UseSoonDays: 270},
		{Category: entities.CategoryRawFood, SubCategory: ptr("Red Meat"), FreshDays: 120, GoodDays: 240, UseSoonDays: 365},
		{Category: entities.CategoryRawFood, SubCategory: ptr("Fish/Seafood"), FreshDays: 90, GoodDays: 180, UseSoonDays: 270},
		{Category: entities.CategoryRawFood, SubCategory: ptr("Ground Meat"), FreshDays: 60, GoodDays: 120, UseSoonDays: 180},
		{Category: entities.CategoryRawFood, SubCategory: ptr("Vegetables"), FreshDays: 180, GoodDays: 300, UseSoonDays: 365},
		{Category: entities.CategoryRawFood, SubCategory: ptr("Fruits"), FreshDays: 180, GoodDays: 300, UseSoonDays: 365},
		{Category: entities.CategoryRawFood, SubCategory: ptr(entities.SubCategoryOther), FreshDays: 90, GoodDays: 180, UseSoonDays: 270},
		{Category: entities.CategoryPreparedMeals, FreshDays: 30, GoodDays: 60, UseSoonDays: 90},
		{Category: entities.CategoryBreastMilk, FreshDays: 90, GoodDays: 180, UseSoonDays: 270},
	}
}

func ptr(s string) *string { return &s }

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.RawFoodItem{},
		&entities.PreparedMealItem{},
		&entities.BreastMilkItem{},
		&entities.FreshnessSetting{},
		&entities.RedZoneDismissal{},
	); err != nil {
		return err
	}

	// A NULL sub_category compares distinct in the unique index, so an
	// insert-or-ignore would duplicate the category-wide rows. Seed only
	// when the table is empty.
	var count int64
	if err := db.Model(&entities.FreshnessSetting{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := defaultSettings()
	return db.Create(&seed).Error
}
