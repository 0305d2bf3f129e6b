package saveduser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yachtbooking/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	users  Repository
	events EventPublisher
}

func NewService(users Repository, events EventPublisher) *Service {
	return &Service{users: users, events: events}
}

func (s *Service) ListUsers(ctx context.Context, userType string) ([]domain.SavedUser, error) {
	if userType != "" {
		t := domain.UserType(userType)
		if t != domain.UserRegular && t != domain.UserFractional {
			return nil, ErrValidation
		}
		return s.users.GetByType(ctx, t)
	}
	return s.users.GetAll(ctx)
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.SavedUser, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, req CreateSavedUserRequest) (*domain.SavedUser, error) {
	now := time.Now()
	u := &domain.SavedUser{
		ID:        uuid.NewString(),
		UserCode:  generateUserCode(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		UserType:  domain.UserRegular,
		IsActive:  true,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.UserType != "" {
		u.UserType = req.UserType
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("saved_user.created", u)
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, req UpdateSavedUserRequest) (*domain.SavedUser, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.UserType != nil {
		u.UserType = *req.UserType
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		u.Notes = *req.Notes
	}

	u.UpdatedAt = time.Now()

	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("saved_user.updated", u)
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}
	if s.events != nil {
		s.events.Publish("saved_user.deleted", map[string]string{"id": id})
	}
	return nil
}

// generateUserCode returns a random token code. A sequential counter
// would collide under concurrent creation, so a uuid fragment is used
// instead.
func generateUserCode() string {
	return fmt.Sprintf("U-%s", strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8]))
}
