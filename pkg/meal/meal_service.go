package meal

import (
	"context"
	"errors"
	"strings"
	"time"

	"freezer-tracker/domain"
	"freezer-tracker/entities"
	"freezer-tracker/internal/utils"
	"freezer-tracker/pkg/freshness"

	"gorm.io/gorm"
)

type (
	MealService interface {
		Create(ctx context.Context, req domain.CreateMealRequest) ([]domain.PreparedMealResponse, error)
		ListActive(ctx context.Context) ([]domain.PreparedMealResponse, error)
		ListConsumed(ctx context.Context) ([]domain.PreparedMealResponse, error)
		Names(ctx context.Context) ([]string, error)
		Update(ctx context.Context, id uint, req domain.UpdateMealRequest) (domain.PreparedMealResponse, error)
		TakeOut(ctx context.Context, id uint) error
		PutBack(ctx context.Context, id uint) error
		Delete(ctx context.Context, id uint) error
	}

	mealService struct {
		mealRepository   MealRepository
		freshnessService freshness.FreshnessService
	}
)

func NewMealService(mealRepository MealRepository, freshnessService freshness.FreshnessService) MealService {
	return &mealService{
		mealRepository:   mealRepository,
		freshnessService: freshnessService,
	}
}

// Create inserts req.Quantity independent rows (default 1). Each bag lives
// and is consumed on its own; there is no count column tying them together.
func (s *mealService) Create(ctx context.Context, req domain.CreateMealRequest) ([]domain.PreparedMealResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrMissingField
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	response := make([]domain.PreparedMealResponse, 0, quantity)
	for i := 0; i < quantity; i++ {
		item := &entities.PreparedMealItem{
			Name:     name,
			Portions: req.Portions,
			Lifecycle: entities.Lifecycle{
				DateAdded: req.DateAdded,
				Comment:   utils.TrimComment(req.Comment),
			},
		}
		if err := s.mealRepository.Create(ctx, item); err != nil {
			return nil, err
		}
		response = append(response, s.toResponse(ctx, *item, true))
	}
	return response, nil
}

func (s *mealService) ListActive(ctx context.Context) ([]domain.PreparedMealResponse, error) {
	items, err := s.mealRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PreparedMealResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(ctx, item, true))
	}
	return response, nil
}

func (s *mealService) ListConsumed(ctx context.Context) ([]domain.PreparedMealResponse, error) {
	items, err := s.mealRepository.ListConsumed(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PreparedMealResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(ctx, item, false))
	}
	return response, nil
}

func (s *mealService) Names(ctx context.Context) ([]string, error) {
	return s.mealRepository.DistinctNames(ctx)
}

func (s *mealService) Update(ctx context.Context, id uint, req domain.UpdateMealRequest) (domain.PreparedMealResponse, error) {
	item, err := s.mealRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PreparedMealResponse{}, domain.ErrItemNotFound
		}
		return domain.PreparedMealResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.PreparedMealResponse{}, domain.ErrMissingField
		}
		item.Name = name
	}
	if req.Portions != nil {
		item.Portions = *req.Portions
	}
	if req.DateAdded != nil {
		item.DateAdded = *req.DateAdded
	}
	if req.Comment != nil {
		item.Comment = utils.TrimComment(req.Comment)
	}

	if err := s.mealRepository.Update(ctx, item); err != nil {
		return domain.PreparedMealResponse{}, err
	}
	return s.toResponse(ctx, *item, item.DateRemoved == nil), nil
}

// TakeOut is all-or-nothing for a bag: the guard on date_removed makes a
// second take-out of the same row fail instead of silently re-dating it.
func (s *mealService) TakeOut(ctx context.Context, id uint) error {
	today := utils.LocalDateString(time.Now())
	affected, err := s.mealRepository.SetRemoved(ctx, id, today)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *mealService) PutBack(ctx context.Context, id uint) error {
	affected, err := s.mealRepository.PutBack(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotRemoved
	}
	return nil
}

func (s *mealService) Delete(ctx context.Context, id uint) error {
	affected, err := s.mealRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *mealService) toResponse(ctx context.Context, item entities.PreparedMealItem, classify bool) domain.PreparedMealResponse {
	response := domain.PreparedMealResponse{
		ID:          item.ID,
		Name:        item.Name,
		Portions:    item.Portions,
		DateAdded:   item.DateAdded,
		Comment:     item.Comment,
		DateRemoved: item.DateRemoved,
		CreatedAt:   item.CreatedAt,
	}

	if classify {
		status, warning := s.freshnessService.StatusFor(ctx, entities.CategoryPreparedMeals, nil, item.DateAdded, time.Now())
		response.Freshness = string(status)
		response.FreshnessWarning = warning
	}
	return response
}
