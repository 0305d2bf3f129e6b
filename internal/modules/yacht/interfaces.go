package yacht

import (
	"context"

	"yachtbooking/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, y *domain.Yacht) error
	GetByID(ctx context.Context, id string) (*domain.Yacht, error)
	GetAll(ctx context.Context) ([]domain.Yacht, error)
	Save(ctx context.Context, y *domain.Yacht) error
	DeleteByID(ctx context.Context, id string) error
}

type EventPublisher interface {
	Publish(eventType string, data any)
}
