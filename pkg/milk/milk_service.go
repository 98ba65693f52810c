package milk

import (
	"context"
	"errors"
	"time"

	"freezer-tracker/domain"
	"freezer-tracker/entities"
	"freezer-tracker/internal/utils"
	"freezer-tracker/pkg/freshness"

	"gorm.io/gorm"
)

type (
	MilkService interface {
		Create(ctx context.Context, req domain.CreateMilkRequest) (domain.BreastMilkResponse, error)
		ListActive(ctx context.Context) ([]domain.BreastMilkResponse, error)
		ListConsumed(ctx context.Context) ([]domain.BreastMilkResponse, error)
		Update(ctx context.Context, id uint, req domain.UpdateMilkRequest) (domain.BreastMilkResponse, error)
		TakeOut(ctx context.Context, id uint) error
		PutBack(ctx context.Context, id uint) error
		Delete(ctx context.Context, id uint) error
	}

	milkService struct {
		milkRepository   MilkRepository
		freshnessService freshness.FreshnessService
	}
)

func NewMilkService(milkRepository MilkRepository, freshnessService freshness.FreshnessService) MilkService {
	return &milkService{
		milkRepository:   milkRepository,
		freshnessService: freshnessService,
	}
}

func (s *milkService) Create(ctx context.Context, req domain.CreateMilkRequest) (domain.BreastMilkResponse, error) {
	item := &entities.BreastMilkItem{
		DateExpressed: req.DateExpressed,
		VolumeML:      req.VolumeML,
		Lifecycle: entities.Lifecycle{
			DateAdded: req.DateAdded,
			Comment:   utils.TrimComment(req.Comment),
		},
	}

	if err := s.milkRepository.Create(ctx, item); err != nil {
		return domain.BreastMilkResponse{}, err
	}
	return s.toResponse(ctx, *item, true), nil
}

func (s *milkService) ListActive(ctx context.Context) ([]domain.BreastMilkResponse, error) {
	items, err := s.milkRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.BreastMilkResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(ctx, item, true))
	}
	return response, nil
}

func (s *milkService) ListConsumed(ctx context.Context) ([]domain.BreastMilkResponse, error) {
	items, err := s.milkRepository.ListConsumed(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.BreastMilkResponse, 0, len(items))
	for _, item := range items {
		response = append(response, s.toResponse(ctx, item, false))
	}
	return response, nil
}

func (s *milkService) Update(ctx context.Context, id uint, req domain.UpdateMilkRequest) (domain.BreastMilkResponse, error) {
	item, err := s.milkRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BreastMilkResponse{}, domain.ErrItemNotFound
		}
		return domain.BreastMilkResponse{}, err
	}

	if req.DateExpressed != nil {
		item.DateExpressed = *req.DateExpressed
	}
	if req.VolumeML != nil {
		item.VolumeML = *req.VolumeML
	}
	if req.DateAdded != nil {
		item.DateAdded = *req.DateAdded
	}
	if req.Comment != nil {
		item.Comment = utils.TrimComment(req.Comment)
	}

	if err := s.milkRepository.Update(ctx, item); err != nil {
		return domain.BreastMilkResponse{}, err
	}
	return s.toResponse(ctx, *item, item.DateRemoved == nil), nil
}

func (s *milkService) TakeOut(ctx context.Context, id uint) error {
	today := utils.LocalDateString(time.Now())
	affected, err := s.milkRepository.SetRemoved(ctx, id, today)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *milkService) PutBack(ctx context.Context, id uint) error {
	affected, err := s.milkRepository.PutBack(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotRemoved
	}
	return nil
}

func (s *milkService) Delete(ctx context.Context, id uint) error {
	affected, err := s.milkRepository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (s *milkService) toResponse(ctx context.Context, item entities.BreastMilkItem, classify bool) domain.BreastMilkResponse {
	response := domain.BreastMilkResponse{
		ID:            item.ID,
		DateExpressed: item.DateExpressed,
		VolumeML:      item.VolumeML,
		DateAdded:     item.DateAdded,
		Comment:       item.Comment,
		DateRemoved:   item.DateRemoved,
		CreatedAt:     item.CreatedAt,
	}

	if classify {
		status, warning := s.freshnessService.StatusFor(ctx, entities.CategoryBreastMilk, nil, item.DateAdded, time.Now())
		response.Freshness = string(status)
		response.FreshnessWarning = warning
	}
	return response
}
