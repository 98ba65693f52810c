package rawfood

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
	RawFoodService interface {
		Create(ctx context.Context, req domain.CreateRawFoodRequest) (domain.RawFoodItemResponse, error)
		ListActive(ctx context.Context) ([]domain.RawFoodItemResponse, error)
		ListConsumed(ctx context.Context) ([]domain.RawFoodItemResponse, error)
		Names(ctx context.Context, subCategory string) ([]string, error)
		Update(ctx context.Context, id uint, req domain.UpdateRawFoodRequest) (domain.RawFoodItemResponse, error)
		TakeOut(ctx context.Context, id uint, amountTaken float64) error
		PutBack(ctx context.Context, id uint) error
		Delete(ctx context.Context, id uint) error
	}

	rawFoodService struct {
		rawFoodRepository RawFoodRepository
		freshnessService  freshness.FreshnessService
	}
)

func NewRawFoodService(rawFoodRepository RawFoodRepository, freshnessService freshness.FreshnessService) RawFoodService {
	return &rawFoodService{
		rawFoodRepository: rawFoodRepository,
		freshnessService:  freshnessService,
	}
}

func (s *rawFoodService) Create(ctx context.Context, req domain.CreateRawFoodRequest) (domain.RawFoodItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.RawFoodItemResponse{}, domain.ErrMissingField
	}

	item := &entities.RawFoodItem{
		SubCategory:   req.SubCategory,
		Name:          name,
		Amount:        req.Amount,
		MeasuringUnit: req.MeasuringUnit,
		Lifecycle: entities.Lifecycle{
			DateAdded: req.DateAdded,
			Comment:   utils.TrimComment(req.Comment),
		},
	}

	if err := s.rawFoodRepository.Create(ctx, item); err != nil {
		return domain.RawFoodItemResponse{}, err
	}
	return s.toResponse(ctx, *item, true), nil
}

func (s *rawFoodService) ListActive(ctx context.Context) ([]domain.RawFoodItemResponse, error) {
	items, err := s.rawFoodRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RawFoodItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(ctx, item, true))
	}
	return response, nil
}

func (s *rawFoodService) ListConsumed(ctx context.Context) ([]domain.RawFoodItemResponse, error) {
	items, err := s.rawFoodRepository.ListConsumed(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RawFoodItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(ctx, item, false))
	}
	return response, nil
}

func (s *rawFoodService) Names(ctx context.Context, subCategory string) ([]string, error) {
	return s.rawFoodRepository.DistinctNames(ctx, subCategory)
}

func (s *rawFoodService) Update(ctx context.Context, id uint, req domain.UpdateRawFoodRequest) (domain.RawFoodItemResponse, error) {
	item, err := s.rawFoodRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RawFoodItemResponse{}, domain.ErrItemNotFound
		}
		return domain.RawFoodItemResponse{}, err
	}

	if req.SubCategory != nil {
		item.SubCategory = *req.SubCategory
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.RawFoodItemResponse{}, domain.ErrMissingField
		}
		item.Name = name
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
	}
	if req.MeasuringUnit != nil {
		item.MeasuringUnit = *req.MeasuringUnit
	}
	if req.DateAdded != nil {
		item.DateAdded = *req.DateAdded
	}
	if req.Comment != nil {
		item.Comment = utils.TrimComment(req.Comment)
	}

	if err := s.rawFoodRepository.Update(ctx, item); err != nil {
		return domain.RawFoodItemResponse{}, err
	}
	return s.toResponse(ctx, *item, item.DateRemoved == nil), nil
}

// TakeOut removes amountTaken from the item. Taking the full amount (or more)
// consumes the row in place; taking less splits it into a reduced active row
// and a new consumed row sharing the original's descriptive fields.
func (s *rawFoodService) TakeOut(ctx context.Context, id uint, amountTaken float64) error {
	if amountTaken <= 0 {
		return domain.ErrInvalidAmount
	}

	item, err := s.rawFoodRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}
	if item.DateRemoved != nil {
		return domain.ErrAlreadyRemoved
	}

	today := utils.LocalDateString(time.Now())
	if amountTaken >= item.Amount {
		affected, err := s.rawFoodRepository.SetRemoved(ctx, id, today)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrAlreadyRemoved
		}
		return nil
	}
	return s.rawFoodRepository.Split(ctx, item, amountTaken, today)
}

func (s *rawFoodService) PutBack(ctx context.Context, id uint) error {
	affected, err := s.rawFoodRepository.PutBack(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotRemoved
	}
	return nil
}

func (s *rawFoodService) Delete(ctx context.Context, id uint) error {
	affected, err := s.rawFoodRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *rawFoodService) toResponse(ctx context.Context, item entities.RawFoodItem, classify bool) domain.RawFoodItemResponse {
	response := domain.RawFoodItemResponse{
		ID:            item.ID,
		SubCategory:   item.SubCategory,
		Name:          item.Name,
		Amount:        item.Amount,
		MeasuringUnit: item.MeasuringUnit,
		DateAdded:     item.DateAdded,
		Comment:       item.Comment,
		DateRemoved:   item.DateRemoved,
		CreatedAt:     item.CreatedAt,
	}

	if classify {
		subCategory := item.SubCategory
		status, warning := s.freshnessService.StatusFor(ctx, entities.CategoryRawFood, &subCategory, item.DateAdded, time.Now())
		response.Freshness = string(status)
		response.FreshnessWarning = warning
	}
	return response
}
