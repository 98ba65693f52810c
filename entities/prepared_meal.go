package entities

type PreparedMealItem struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:text;not null" json:"name"`
	Portions int    `gorm:"not null" json:"portions"`

	Lifecycle
}

func (PreparedMealItem) TableName() string {
	return "prepared_meals"
}
