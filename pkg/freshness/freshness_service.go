package freshness

import (
	"context"
	"errors"
	"time"

	"freezer-tracker/domain"
	"freezer-tracker/entities"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type (
	FreshnessService interface {
		GetSettings(ctx context.Context) ([]entities.FreshnessSetting, error)
		UpdateSetting(ctx context.Context, id uint, req domain.UpdateFreshnessSettingRequest) (*entities.FreshnessSetting, error)
		// StatusFor classifies one item. The bool reports a configuration
		// warning: no setting resolved and the fallback status was used.
		StatusFor(ctx context.Context, category string, subCategory *string, dateAdded string, now time.Time) (Status, bool)
	}

	freshnessService struct {
		freshnessRepository FreshnessRepository
		logger              *zap.Logger
	}
)

func NewFreshnessService(freshnessRepository FreshnessRepository, logger *zap.Logger) FreshnessService {
	return &freshnessService{
		freshnessRepository: freshnessRepository,
		logger:              logger,
	}
}

func (s *freshnessService) GetSettings(ctx context.Context) ([]entities.FreshnessSetting, error) {
	return s.freshnessRepository.GetSettings(ctx)
}

func (s *freshnessService) UpdateSetting(ctx context.Context, id uint, req domain.UpdateFreshnessSettingRequest) (*entities.FreshnessSetting, error) {
	setting, err := s.freshnessRepository.GetSettingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSettingNotFound
		}
		return nil, err
	}

	setting.FreshDays = req.FreshDays
	setting.GoodDays = req.GoodDays
	setting.UseSoonDays = req.UseSoonDays

	if err := s.freshnessRepository.UpdateSetting(ctx, setting); err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *freshnessService) StatusFor(ctx context.Context, category string, subCategory *string, dateAdded string, now time.Time) (Status, bool) {
	setting, err := s.freshnessRepository.ResolveSetting(ctx, category, subCategory)
	if err != nil {
		s.logger.Warn("no freshness setting resolved, using fallback status",
			zap.String("category", category),
			zap.Stringp("sub_category", subCategory),
			zap.Error(err),
		)
		return StatusFallback, true
	}

	status, err := ClassifyDate(dateAdded, now, Thresholds{
		FreshDays:   setting.FreshDays,
		GoodDays:    setting.GoodDays,
		UseSoonDays: setting.UseSoonDays,
	})
	if err != nil {
		s.logger.Warn("unparseable date_added, using fallback status",
			zap.String("date_added", dateAdded),
			zap.Error(err),
		)
		return StatusFallback, true
	}
	return status, false
}
