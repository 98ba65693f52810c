package entities

const (
	CategoryRawFood       = "raw_food"
	CategoryPreparedMeals = "prepared_meals"
	CategoryBreastMilk    = "breast_milk"
)

const (
	UnitKg     = "kg"
	UnitPieces = "pieces"
)

// SubCategoryOther is the fallback bucket for raw-food threshold lookups.
const SubCategoryOther = "Other"

type RawFoodItem struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	SubCategory   string  `gorm:"type:text;not null" json:"sub_category"`
	Name          string  `gorm:"type:text;not null" json:"name"`
	Amount        float64 `gorm:"not null" json:"amount"`
	MeasuringUnit string  `gorm:"type:text;not null" json:"measuring_unit"`

	Lifecycle
}

func (RawFoodItem) TableName() string {
	return "raw_food"
}
