package stats

import (
	"context"

	"freezer-tracker/domain"
	"freezer-tracker/entities"
	"freezer-tracker/pkg/meal"
	"freezer-tracker/pkg/milk"
	"freezer-tracker/pkg/rawfood"
)

type (
	// StatsService computes the summary live on every call; write volume is
	// far too low to justify a cache.
	StatsService interface {
		GetStats(ctx context.Context) (domain.StatsResponse, error)
	}

	statsService struct {
		rawFoodRepository rawfood.RawFoodRepository
		mealRepository    meal.MealRepository
		milkRepository    milk.MilkRepository
	}
)

func NewStatsService(
	rawFoodRepository rawfood.RawFoodRepository,
	mealRepository meal.MealRepository,
	milkRepository milk.MilkRepository,
) StatsService {
	return &statsService{
		rawFoodRepository: rawFoodRepository,
		mealRepository:    mealRepository,
		milkRepository:    milkRepository,
	}
}

func (s *statsService) GetStats(ctx context.Context) (domain.StatsResponse, error) {
	var (
		response domain.StatsResponse
		err      error
	)

	if response.RawFood.InFreezerKg, err = s.rawFoodRepository.SumAmount(ctx, entities.UnitKg, false); err != nil {
		return domain.StatsResponse{}, err
	}
	if response.RawFood.InFreezerPieces, err = s.rawFoodRepository.SumAmount(ctx, entities.UnitPieces, false); err != nil {
		return domain.StatsResponse{}, err
	}
	if response.RawFood.ConsumedKg, err = s.rawFoodRepository.SumAmount(ctx, entities.UnitKg, true); err != nil {
		return domain.StatsResponse{}, err
	}
	if response.RawFood.ConsumedPieces, err = s.rawFoodRepository.SumAmount(ctx, entities.UnitPieces, true); err != nil {
		return domain.StatsResponse{}, err
	}

	if response.PreparedMeals.BagsInFreezer, err = s.mealRepository.CountActive(ctx); err != nil {
		return domain.StatsResponse{}, err
	}
	if response.PreparedMeals.PortionsInFreezer, err = s.mealRepository.SumPortions(ctx, false); err != nil {
		return domain.StatsResponse{}, err
	}
	if response.PreparedMeals.PortionsConsumed, err = s.mealRepository.SumPortions(ctx, true); err != nil {
		return domain.StatsResponse{}, err
	}

	if response.BreastMilk.InFreezerML, err = s.milkRepository.SumVolume(ctx, false); err != nil {
		return domain.StatsResponse{}, err
	}
	if response.BreastMilk.ConsumedML, err = s.milkRepository.SumVolume(ctx, true); err != nil {
		return domain.StatsResponse{}, err
	}

	return response, nil
}
