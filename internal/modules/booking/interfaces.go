package booking

import (
	"context"

	"yachtbooking/internal/domain"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	FindByServiceDate(ctx context.Context, date string) ([]domain.Booking, error)
	Save(ctx context.Context, b *domain.Booking) error
	DeleteByID(ctx context.Context, id string) error
}

type YachtRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Yacht, error)
}

// EventPublisher pushes entity-change events to connected dashboards.
// A nil publisher disables the feed.
type EventPublisher interface {
	Publish(eventType string, data any)
}
