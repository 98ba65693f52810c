package meal

import (
	"context"

	"freezer-tracker/entities"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		Create(ctx context.Context, item *entities.PreparedMealItem) error
		GetByID(ctx context.Context, id uint) (*entities.PreparedMealItem, error)
		ListActive(ctx context.Context) ([]entities.PreparedMealItem, error)
		ListConsumed(ctx context.Context) ([]entities.PreparedMealItem, error)
		DistinctNames(ctx context.Context) ([]string, error)
		Update(ctx context.Context, item *entities.PreparedMealItem) error
		Delete(ctx context.Context, id uint) (int64, error)
		SetRemoved(ctx context.Context, id uint, date string) (int64, error)
		PutBack(ctx context.Context, id uint) (int64, error)
		CountActive(ctx context.Context) (int64, error)
		SumPortions(ctx context.Context, consumed bool) (int64, error)
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, item *entities.PreparedMealItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *mealRepository) GetByID(ctx context.Context, id uint) (*entities.PreparedMealItem, error) {
	var item entities.PreparedMealItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mealRepository) ListActive(ctx context.Context) ([]entities.PreparedMealItem, error) {
	var items []entities.PreparedMealItem
	if err := r.db.WithContext(ctx).
		Where("date_removed IS NULL").
		Order("date_added desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mealRepository) ListConsumed(ctx context.Context) ([]entities.PreparedMealItem, error) {
	var items []entities.PreparedMealItem
	if err := r.db.WithContext(ctx).
		Where("date_removed IS NOT NULL").
		Order("date_removed desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mealRepository) DistinctNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).
		Model(&entities.PreparedMealItem{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *mealRepository) Update(ctx context.Context, item *entities.PreparedMealItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *mealRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PreparedMealItem{})
	return res.RowsAffected, res.Error
}

func (r *mealRepository) SetRemoved(ctx context.Context, id uint, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.PreparedMealItem{}).
		Where("id = ? AND date_removed IS NULL", id).
		Update("date_removed", date)
	return res.RowsAffected, res.Error
}

func (r *mealRepository) PutBack(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.PreparedMealItem{}).
		Where("id = ? AND date_removed IS NOT NULL", id).
		Update("date_removed", nil)
	return res.RowsAffected, res.Error
}

func (r *mealRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.PreparedMealItem{}).
		Where("date_removed IS NULL").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *mealRepository) SumPortions(ctx context.Context, consumed bool) (int64, error) {
	removed := "date_removed IS NULL"
	if consumed {
		removed = "date_removed IS NOT NULL"
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.PreparedMealItem{}).
		Where(removed).
		Select("COALESCE(SUM(portions), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
