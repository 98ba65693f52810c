package entities

// FreshnessSetting holds the three ascending day thresholds for one
// (category, sub_category) pair. SubCategory is NULL for prepared meals and
// breast milk. The engine assumes fresh < good < use_soon; storage does not
// enforce the ordering.
type FreshnessSetting struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Category    string  `gorm:"type:text;not null;uniqueIndex:idx_freshness_category_sub" json:"category"`
	SubCategory *string `gorm:"type:text;uniqueIndex:idx_freshness_category_sub" json:"sub_category"`
	FreshDays   int     `gorm:"not null" json:"fresh_days"`
	GoodDays    int     `gorm:"not null" json:"good_days"`
	UseSoonDays int     `gorm:"not null" json:"use_soon_days"`
}

func (FreshnessSetting) TableName() string {
	return "freshness_settings"
}
