package yacht

import (
	"context"
	"errors"
	"time"

	"yachtbooking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	yachts Repository
	events EventPublisher
}

func NewService(yachts Repository, events EventPublisher) *Service {
	return &Service{yachts: yachts, events: events}
}

func (s *Service) ListYachts(ctx context.Context) ([]domain.Yacht, error) {
	return s.yachts.GetAll(ctx)
}

func (s *Service) GetYacht(ctx context.Context, id string) (*domain.Yacht, error) {
	y, err := s.yachts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return y, nil
}

func (s *Service) CreateYacht(ctx context.Context, req CreateYachtRequest) (*domain.Yacht, error) {
	now := time.Now()
	y := &domain.Yacht{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Capacity:      req.Capacity,
		IsActive:      true,
		YachtType:     domain.YachtRegular,
		TimeSlots:     req.TimeSlots,
		DateOverrides: req.DateOverrides,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.IsActive != nil {
		y.IsActive = *req.IsActive
	}
	if req.YachtType != "" {
		y.YachtType = req.YachtType
	}

	if err := s.yachts.Create(ctx, y); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("yacht.created", y)
	}
	return y, nil
}

func (s *Service) UpdateYacht(ctx context.Context, id string, req UpdateYachtRequest) (*domain.Yacht, error) {
	y, err := s.yachts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		y.Name = *req.Name
	}
	if req.Description != nil {
		y.Description = *req.Description
	}
	// zero and negative capacities are ignored rather than applied
	if req.Capacity != nil && *req.Capacity > 0 {
		y.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		y.IsActive = *req.IsActive
	}
	if req.YachtType != nil {
		y.YachtType = *req.YachtType
	}
	if req.TimeSlots != nil {
		y.TimeSlots = *req.TimeSlots
	}
	if req.DateOverrides != nil {
		y.DateOverrides = *req.DateOverrides
	}

	y.UpdatedAt = time.Now()

	if err := s.yachts.Save(ctx, y); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("yacht.updated", y)
	}
	return y, nil
}

// DeleteYacht removes the yacht by id. Existing bookings keep their
// snapshots and are never cascaded.
func (s *Service) DeleteYacht(ctx context.Context, id string) error {
	if err := s.yachts.DeleteByID(ctx, id); err != nil {
		return err
	}
	if s.events != nil {
		s.events.Publish("yacht.deleted", map[string]string{"id": id})
	}
	return nil
}
