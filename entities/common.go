package entities

import "time"

// Lifecycle is embedded by the three freezer item kinds. DateAdded/DateRemoved
// are YYYY-MM-DD strings; DateRemoved is NULL while the item sits in the
// freezer and set to the local date of the take-out once consumed.
type Lifecycle struct {
	DateAdded   string    `gorm:"type:text;not null" json:"date_added"`
	Comment     *string   `gorm:"type:text" json:"comment"`
	DateRemoved *string   `gorm:"type:text" json:"date_removed"`
	CreatedAt   time.Time `json:"created_at"`
}

func (l Lifecycle) Added() string {
	return l.DateAdded
}

func (l Lifecycle) Removed() *string {
	return l.DateRemoved
}

func (l Lifecycle) Note() string {
	if l.Comment == nil {
		return ""
	}
	return *l.Comment
}

// LifecycleRecord is any freezer row carrying the shared lifecycle columns.
// Freshness classification and the export renderer operate on this rather
// than on the concrete kinds.
type LifecycleRecord interface {
	Added() string
	Removed() *string
	Note() string
}
