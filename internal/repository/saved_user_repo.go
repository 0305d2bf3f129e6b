package repository

import (
	"context"
	"time"

	"yachtbooking/internal/domain"

	"gorm.io/gorm"
)

type SavedUserRepository struct {
	db *gorm.DB
}

func NewSavedUserRepository(db *gorm.DB) *SavedUserRepository {
	return &SavedUserRepository{db: db}
}

type savedUserModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	UserCode string `gorm:"column:user_code;uniqueIndex"`

	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
	Phone string `gorm:"column:phone"`

	UserType string  `gorm:"column:user_type;index"`
	IsActive bool    `gorm:"column:is_active"`
	Notes    *string `gorm:"column:notes"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (savedUserModel) TableName() string { return "saved_users" }

func toDomainSavedUser(m savedUserModel) *domain.SavedUser {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.SavedUser{
		ID:        m.ID,
		UserCode:  m.UserCode,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		UserType:  domain.UserType(m.UserType),
		IsActive:  m.IsActive,
		Notes:     notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toSavedUserModel(u *domain.SavedUser) savedUserModel {
	var notes *string
	if u.Notes != "" {
		v := u.Notes
		notes = &v
	}

	return savedUserModel{
		ID:        u.ID,
		UserCode:  u.UserCode,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		UserType:  string(u.UserType),
		IsActive:  u.IsActive,
		Notes:     notes,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *SavedUserRepository) Create(ctx context.Context, u *domain.SavedUser) error {
	m := toSavedUserModel(u)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainSavedUser(m)
	return nil
}

func (r *SavedUserRepository) GetByID(ctx context.Context, id string) (*domain.SavedUser, error) {
	var m savedUserModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSavedUser(m), nil
}

func (r *SavedUserRepository) GetAll(ctx context.Context) ([]domain.SavedUser, error) {
	var models []savedUserModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.SavedUser, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainSavedUser(m))
	}
	return out, nil
}

func (r *SavedUserRepository) GetByType(ctx context.Context, userType domain.UserType) ([]domain.SavedUser, error) {
	var models []savedUserModel
	tx := r.db.WithContext(ctx).Where("user_type = ?", string(userType)).Order("created_at ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.SavedUser, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainSavedUser(m))
	}
	return out, nil
}

func (r *SavedUserRepository) Save(ctx context.Context, u *domain.SavedUser) error {
	m := toSavedUserModel(u)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainSavedUser(m)
	return nil
}

func (r *SavedUserRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&savedUserModel{}, "id = ?", id).Error
}

func (r *SavedUserRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&savedUserModel{}).Count(&cnt)
	return cnt, tx.Error
}
