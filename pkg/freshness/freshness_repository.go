package freshness

import (
	"context"
	"errors"

	"freezer-tracker/entities"

	"gorm.io/gorm"
)

type (
	FreshnessRepository interface {
		GetSettings(ctx context.Context) ([]entities.FreshnessSetting, error)
		GetSettingByID(ctx context.Context, id uint) (*entities.FreshnessSetting, error)
		UpdateSetting(ctx context.Context, setting *entities.FreshnessSetting) error
		ResolveSetting(ctx context.Context, category string, subCategory *string) (*entities.FreshnessSetting, error)
	}

	freshnessRepository struct {
		db *gorm.DB
	}
)

func NewFreshnessRepository(db *gorm.DB) FreshnessRepository {
	return &freshnessRepository{db: db}
}

func (r *freshnessRepository) GetSettings(ctx context.Context) ([]entities.FreshnessSetting, error) {
	var settings []entities.FreshnessSetting
	if err := r.db.WithContext(ctx).Order("id").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *freshnessRepository) GetSettingByID(ctx context.Context, id uint) (*entities.FreshnessSetting, error) {
	var setting entities.FreshnessSetting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *freshnessRepository) UpdateSetting(ctx context.Context, setting *entities.FreshnessSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

// ResolveSetting finds the thresholds for a (category, sub_category) pair.
// Raw-food lookups with no exact match fall back to the "Other" bucket.
// Prepared meals and breast milk are keyed by category alone.
func (r *freshnessRepository) ResolveSetting(ctx context.Context, category string, subCategory *string) (*entities.FreshnessSetting, error) {
	setting, err := r.findSetting(ctx, category, subCategory)
	if err == nil {
		return setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if category == entities.CategoryRawFood && subCategory != nil && *subCategory != entities.SubCategoryOther {
		other := entities.SubCategoryOther
		return r.findSetting(ctx, category, &other)
	}
	return nil, err
}

func (r *freshnessRepository) findSetting(ctx context.Context, category string, subCategory *string) (*entities.FreshnessSetting, error) {
	var setting entities.FreshnessSetting
	query := r.db.WithContext(ctx).Where("category = ?", category)
	if subCategory == nil {
		query = query.Where("sub_category IS NULL")
	} else {
		query = query.Where("sub_category = ?", *subCategory)
	}
	if err := query.First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}
