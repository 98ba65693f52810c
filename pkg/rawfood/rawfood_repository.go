package rawfood

import (
	"context"

	"freezer-tracker/entities"

	"gorm.io/gorm"
)

type (
	RawFoodRepository interface {
		Create(ctx context.Context, item *entities.RawFoodItem) error
		GetByID(ctx context.Context, id uint) (*entities.RawFoodItem, error)
		ListActive(ctx context.Context) ([]entities.RawFoodItem, error)
		ListConsumed(ctx context.Context) ([]entities.RawFoodItem, error)
		DistinctNames(ctx context.Context, subCategory string) ([]string, error)
		Update(ctx context.Context, item *entities.RawFoodItem) error
		Delete(ctx context.Context, id uint) (int64, error)
		SetRemoved(ctx context.Context, id uint, date string) (int64, error)
		Split(ctx context.Context, original *entities.RawFoodItem, amountTaken float64, date string) error
		PutBack(ctx context.Context, id uint) (int64, error)
		SumAmount(ctx context.Context, unit string, consumed bool) (float64, error)
	}

	rawFoodRepository struct {
		db *gorm.DB
	}
)

func NewRawFoodRepository(db *gorm.DB) RawFoodRepository {
	return &rawFoodRepository{db: db}
}

func (r *rawFoodRepository) Create(ctx context.Context, item *entities.RawFoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *rawFoodRepository) GetByID(ctx context.Context, id uint) (*entities.RawFoodItem, error) {
	var item entities.RawFoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *rawFoodRepository) ListActive(ctx context.Context) ([]entities.RawFoodItem, error) {
	var items []entities.RawFoodItem
	if err := r.db.WithContext(ctx).
		Where("date_removed IS NULL").
		Order("date_added desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *rawFoodRepository) ListConsumed(ctx context.Context) ([]entities.RawFoodItem, error) {
	var items []entities.RawFoodItem
	if err := r.db.WithContext(ctx).
		Where("date_removed IS NOT NULL").
		Order("date_removed desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *rawFoodRepository) DistinctNames(ctx context.Context, subCategory string) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&entities.RawFoodItem{}).
		Where("sub_category = ?", subCategory).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *rawFoodRepository) Update(ctx context.Context, item *entities.RawFoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *rawFoodRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RawFoodItem{})
	return res.RowsAffected, res.Error
}

func (r *rawFoodRepository) SetRemoved(ctx context.Context, id uint, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.RawFoodItem{}).
		Where("id = ? AND date_removed IS NULL", id).
		Update("date_removed", date)
	return res.RowsAffected, res.Error
}

// Split performs a partial take-out: the original row keeps the remainder and
// a consumed clone is inserted with the taken amount. Both statements run in
// one transaction so a crash cannot lose or duplicate quantity.
func (r *rawFoodRepository) Split(ctx context.Context, original *entities.RawFoodItem, amountTaken float64, date string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.RawFoodItem{}).
			Where("id = ?", original.ID).
			Update("amount", gorm.Expr("amount - ?", amountTaken)).Error; err != nil {
			return err
		}

		taken := entities.RawFoodItem{
			SubCategory:   original.SubCategory,
			Name:          original.Name,
			Amount:        amountTaken,
			MeasuringUnit: original.MeasuringUnit,
			Lifecycle: entities.Lifecycle{
				DateAdded:   original.DateAdded,
				Comment:     original.Comment,
				DateRemoved: &date,
			},
		}
		return tx.Create(&taken).Error
	})
}

func (r *rawFoodRepository) PutBack(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.RawFoodItem{}).
		Where("id = ? AND date_removed IS NOT NULL", id).
		Update("date_removed", nil)
	return res.RowsAffected, res.Error
}

func (r *rawFoodRepository) SumAmount(ctx context.Context, unit string, consumed bool) (float64, error) {
	removed := "date_removed IS NULL"
	if consumed {
		removed = "date_removed IS NOT NULL"
	}

	var total float64
	if err := r.db.WithContext(ctx).
		Model(&entities.RawFoodItem{}).
		Where(removed).
		Where("measuring_unit = ?", unit).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
