package entities

type BreastMilkItem struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DateExpressed string `gorm:"type:text;not null" json:"date_expressed"`
	VolumeML      int    `gorm:"column:volume_ml;not null" json:"volume_ml"`

	Lifecycle
}

func (BreastMilkItem) TableName() string {
	return "breast_milk"
}
