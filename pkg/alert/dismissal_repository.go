package alert

import (
	"context"
	"errors"

	"freezer-tracker/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DismissalRepository interface {
		IsDismissed(ctx context.Context, date string) (bool, error)
		Dismiss(ctx context.Context, date string) error
	}

	dismissalRepository struct {
		db *gorm.DB
	}
)

func NewDismissalRepository(db *gorm.DB) DismissalRepository {
	return &dismissalRepository{db: db}
}

func (r *dismissalRepository) IsDismissed(ctx context.Context, date string) (bool, error) {
	var dismissal entities.RedZoneDismissal
	err := r.db.WithContext(ctx).Where("dismissed_date = ?", date).First(&dismissal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Dismiss is idempotent: the unique index on dismissed_date plus DO NOTHING
// makes a second dismissal of the same day a no-op.
func (r *dismissalRepository) Dismiss(ctx context.Context, date string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.RedZoneDismissal{DismissedDate: date}).Error
}
