package saveduser

import (
	"context"

	"yachtbooking/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, u *domain.SavedUser) error
	GetByID(ctx context.Context, id string) (*domain.SavedUser, error)
	GetAll(ctx context.Context) ([]domain.SavedUser, error)
	GetByType(ctx context.Context, userType domain.UserType) ([]domain.SavedUser, error)
	Save(ctx context.Context, u *domain.SavedUser) error
	DeleteByID(ctx context.Context, id string) error
}

type EventPublisher interface {
	Publish(eventType string, data any)
}
