package alert

import (
	"context"
	"fmt"
	"time"

	"freezer-tracker/domain"
	"freezer-tracker/entities"
	"freezer-tracker/internal/utils"
	"freezer-tracker/pkg/freshness"
	"freezer-tracker/pkg/meal"
	"freezer-tracker/pkg/milk"
	"freezer-tracker/pkg/rawfood"
)

type (
	AlertService interface {
		IsDismissedToday(ctx context.Context) (bool, error)
		DismissToday(ctx context.Context) error
		// RedZone returns the urgent items (status red) across all kinds.
		// While today's dismissal is in effect the list is suppressed
		// entirely, not merely flagged.
		RedZone(ctx context.Context) (domain.RedZoneResponse, error)
	}

	alertService struct {
		dismissalRepository DismissalRepository
		rawFoodRepository   rawfood.RawFoodRepository
		mealRepository      meal.MealRepository
		milkRepository      milk.MilkRepository
		freshnessService    freshness.FreshnessService
	}
)

func NewAlertService(
	dismissalRepository DismissalRepository,
	rawFoodRepository rawfood.RawFoodRepository,
	mealRepository meal.MealRepository,
	milkRepository milk.MilkRepository,
	freshnessService freshness.FreshnessService,
) AlertService {
	return &alertService{
		dismissalRepository: dismissalRepository,
		rawFoodRepository:   rawFoodRepository,
		mealRepository:      mealRepository,
		milkRepository:      milkRepository,
		freshnessService:    freshnessService,
	}
}

func (s *alertService) IsDismissedToday(ctx context.Context) (bool, error) {
	return s.dismissalRepository.IsDismissed(ctx, utils.LocalDateString(time.Now()))
}

func (s *alertService) DismissToday(ctx context.Context) error {
	return s.dismissalRepository.Dismiss(ctx, utils.LocalDateString(time.Now()))
}

func (s *alertService) RedZone(ctx context.Context) (domain.RedZoneResponse, error) {
	dismissed, err := s.IsDismissedToday(ctx)
	if err != nil {
		return domain.RedZoneResponse{}, err
	}
	if dismissed {
		return domain.RedZoneResponse{Dismissed: true, Items: []domain.RedZoneItem{}}, nil
	}

	now := time.Now()
	items := []domain.RedZoneItem{}

	rawItems, err := s.rawFoodRepository.ListActive(ctx)
	if err != nil {
		return domain.RedZoneResponse{}, err
	}
	for _, item := range rawItems {
		subCategory := item.SubCategory
		status, _ := s.freshnessService.StatusFor(ctx, entities.CategoryRawFood, &subCategory, item.DateAdded, now)
		if status == freshness.StatusRed {
			items = append(items, domain.RedZoneItem{
				Category:  entities.CategoryRawFood,
				ID:        item.ID,
				Label:     item.Name,
				DateAdded: item.DateAdded,
			})
		}
	}

	meals, err := s.mealRepository.ListActive(ctx)
	if err != nil {
		return domain.RedZoneResponse{}, err
	}
	for _, item := range meals {
		status, _ := s.freshnessService.StatusFor(ctx, entities.CategoryPreparedMeals, nil, item.DateAdded, now)
		if status == freshness.StatusRed {
			items = append(items, domain.RedZoneItem{
				Category:  entities.CategoryPreparedMeals,
				ID:        item.ID,
				Label:     item.Name,
				DateAdded: item.DateAdded,
			})
		}
	}

	milkItems, err := s.milkRepository.ListActive(ctx)
	if err != nil {
		return domain.RedZoneResponse{}, err
	}
	for _, item := range milkItems {
		status, _ := s.freshnessService.StatusFor(ctx, entities.CategoryBreastMilk, nil, item.DateAdded, now)
		if status == freshness.StatusRed {
			items = append(items, domain.RedZoneItem{
				Category:  entities.CategoryBreastMilk,
				ID:        item.ID,
				Label:     fmt.Sprintf("%d ml", item.VolumeML),
				DateAdded: item.DateAdded,
			})
		}
	}

	return domain.RedZoneResponse{Dismissed: false, Items: items}, nil
}
