package repository

import (
	"context"
	"encoding/json"
	"time"

	"yachtbooking/internal/domain"

	"gorm.io/gorm"
)

type YachtRepository struct {
	db *gorm.DB
}

func NewYachtRepository(db *gorm.DB) *YachtRepository {
	return &YachtRepository{db: db}
}

// Slot sets are stored as JSON text columns, keeping the document shape
// of the yacht schedule intact across sqlite and postgres.
type yachtModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description"`
	Capacity      int       `gorm:"column:capacity"`
	IsActive      bool      `gorm:"column:is_active"`
	YachtType     string    `gorm:"column:yacht_type"`
	TimeSlots     []byte    `gorm:"column:time_slots;type:text"`
	DateOverrides []byte    `gorm:"column:date_overrides;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (yachtModel) TableName() string { return "yachts" }

func toDomainYacht(m yachtModel) (*domain.Yacht, error) {
	y := &domain.Yacht{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Capacity:    m.Capacity,
		IsActive:    m.IsActive,
		YachtType:   domain.YachtType(m.YachtType),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	if len(m.TimeSlots) > 0 {
		if err := json.Unmarshal(m.TimeSlots, &y.TimeSlots); err != nil {
			return nil, err
		}
	}
	if len(m.DateOverrides) > 0 {
		if err := json.Unmarshal(m.DateOverrides, &y.DateOverrides); err != nil {
			return nil, err
		}
	}
	return y, nil
}

func toYachtModel(y *domain.Yacht) (yachtModel, error) {
	m := yachtModel{
		ID:          y.ID,
		Name:        y.Name,
		Description: y.Description,
		Capacity:    y.Capacity,
		IsActive:    y.IsActive,
		YachtType:   string(y.YachtType),
		CreatedAt:   y.CreatedAt,
		UpdatedAt:   y.UpdatedAt,
	}

	if y.TimeSlots != nil {
		raw, err := json.Marshal(y.TimeSlots)
		if err != nil {
			return m, err
		}
		m.TimeSlots = raw
	}
	if y.DateOverrides != nil {
		raw, err := json.Marshal(y.DateOverrides)
		if err != nil {
			return m, err
		}
		m.DateOverrides = raw
	}
	return m, nil
}

func (r *YachtRepository) Create(ctx context.Context, y *domain.Yacht) error {
	m, err := toYachtModel(y)
	if err != nil {
		return err
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainYacht(m)
	if err != nil {
		return err
	}
	*y = *out
	return nil
}

func (r *YachtRepository) GetByID(ctx context.Context, id string) (*domain.Yacht, error) {
	var m yachtModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainYacht(m)
}

func (r *YachtRepository) GetAll(ctx context.Context) ([]domain.Yacht, error) {
	var models []yachtModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Yacht, 0, len(models))
	for _, m := range models {
		y, err := toDomainYacht(m)
		if err != nil {
			return nil, err
		}
		out = append(out, *y)
	}
	return out, nil
}

func (r *YachtRepository) Save(ctx context.Context, y *domain.Yacht) error {
	m, err := toYachtModel(y)
	if err != nil {
		return err
	}
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	out, err := toDomainYacht(m)
	if err != nil {
		return err
	}
	*y = *out
	return nil
}

// DeleteByID is idempotent; bookings are never cascaded.
func (r *YachtRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&yachtModel{}, "id = ?", id).Error
}

func (r *YachtRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&yachtModel{}).Count(&cnt)
	return cnt, tx.Error
}
