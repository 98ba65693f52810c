package milk

import (
	"context"

	"freezer-tracker/entities"

	"gorm.io/gorm"
)

type (
	MilkRepository interface {
		Create(ctx context.Context, item *entities.BreastMilkItem) error
		GetByID(ctx context.Context, id uint) (*entities.BreastMilkItem, error)
		ListActive(ctx context.Context) ([]entities.BreastMilkItem, error)
		ListConsumed(ctx context.Context) ([]entities.BreastMilkItem, error)
		Update(ctx context.Context, item *entities.BreastMilkItem) error
		Delete(ctx context.Context, id uint) (int64, error)
		SetRemoved(ctx context.Context, id uint, date string) (int64, error)
		PutBack(ctx context.Context, id uint) (int64, error)
		SumVolume(ctx context.Context, consumed bool) (int64, error)
	}

	milkRepository struct {
		db *gorm.DB
	}
)

func NewMilkRepository(db *gorm.DB) MilkRepository {
	return &milkRepository{db: db}
}

func (r *milkRepository) Create(ctx context.Context, item *entities.BreastMilkItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *milkRepository) GetByID(ctx context.Context, id uint) (*entities.BreastMilkItem, error) {
	var item entities.BreastMilkItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *milkRepository) ListActive(ctx context.Context) ([]entities.BreastMilkItem, error) {
	var items []entities.BreastMilkItem
	if err := r.db.WithContext(ctx).
		Where("date_removed IS NULL").
		Order("date_added desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *milkRepository) ListConsumed(ctx context.Context) ([]entities.BreastMilkItem, error) {
	var items []entities.BreastMilkItem
	if err := r.db.WithContext(ctx).
		Where("date_removed IS NOT NULL").
		Order("date_removed desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *milkRepository) Update(ctx context.Context, item *entities.BreastMilkItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *milkRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.BreastMilkItem{})
	return res.RowsAffected, res.Error
}

func (r *milkRepository) SetRemoved(ctx context.Context, id uint, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.BreastMilkItem{}).
		Where("id = ? AND date_removed IS NULL", id).
		Update("date_removed", date)
	return res.RowsAffected, res.Error
}

func (r *milkRepository) PutBack(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.BreastMilkItem{}).
		Where("id = ? AND date_removed IS NOT NULL", id).
		Update("date_removed", nil)
	return res.RowsAffected, res.Error
}

func (r *milkRepository) SumVolume(ctx context.Context, consumed bool) (int64, error) {
	removed := "date_removed IS NULL"
	if consumed {
		removed = "date_removed IS NOT NULL"
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.BreastMilkItem{}).
		Where(removed).
		Select("COALESCE(SUM(volume_ml), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
