package entities

// RedZoneDismissal suppresses red-zone alerts for one local calendar date.
// The lookup key is always today's date, so a dismissal expires on its own at
// the next date rollover.
type RedZoneDismissal struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DismissedDate string `gorm:"type:text;not null;uniqueIndex" json:"dismissed_date"`
}

func (RedZoneDismissal) TableName() string {
	return "red_zone_dismissals"
}
