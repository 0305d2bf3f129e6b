package repository

import (
	"context"
	"time"

	"yachtbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	BookingCode string `gorm:"column:booking_code;uniqueIndex"`

	YachtID   string `gorm:"column:yacht_id;index"`
	YachtName string `gorm:"column:yacht_name"`

	SlotID    string `gorm:"column:slot_id"`
	SlotLabel string `gorm:"column:slot_label"`
	SlotStart string `gorm:"column:slot_start"`
	SlotEnd   string `gorm:"column:slot_end"`

	ServiceDate string `gorm:"column:service_date;index"`

	CustomerName string `gorm:"column:customer_name"`
	Phone        string `gorm:"column:phone"`
	Email        string `gorm:"column:email"`

	Status    string `gorm:"column:status"`
	EmailSent bool   `gorm:"column:email_sent"`

	Notes        *string `gorm:"column:notes"`
	CancelReason *string `gorm:"column:cancel_reason"`

	RewardID    string `gorm:"column:reward_id"`
	TokenTxTime string `gorm:"column:token_tx_time"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes, cancelReason string
	if m.Notes != nil {
		notes = *m.Notes
	}
	if m.CancelReason != nil {
		cancelReason = *m.CancelReason
	}

	return &domain.Booking{
		ID:           m.ID,
		BookingCode:  m.BookingCode,
		YachtID:      m.YachtID,
		YachtName:    m.YachtName,
		SlotID:       m.SlotID,
		SlotLabel:    m.SlotLabel,
		SlotStart:    m.SlotStart,
		SlotEnd:      m.SlotEnd,
		ServiceDate:  m.ServiceDate,
		CustomerName: m.CustomerName,
		Phone:        m.Phone,
		Email:        m.Email,
		Status:       domain.BookingStatus(m.Status),
		EmailSent:    m.EmailSent,
		Notes:        notes,
		CancelReason: cancelReason,
		RewardID:     m.RewardID,
		TokenTxTime:  m.TokenTxTime,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes, cancelReason *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	if b.CancelReason != "" {
		v := b.CancelReason
		cancelReason = &v
	}

	return bookingModel{
		ID:           b.ID,
		BookingCode:  b.BookingCode,
		YachtID:      b.YachtID,
		YachtName:    b.YachtName,
		SlotID:       b.SlotID,
		SlotLabel:    b.SlotLabel,
		SlotStart:    b.SlotStart,
		SlotEnd:      b.SlotEnd,
		ServiceDate:  b.ServiceDate,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Email:        b.Email,
		Status:       string(b.Status),
		EmailSent:    b.EmailSent,
		Notes:        notes,
		CancelReason: cancelReason,
		RewardID:     b.RewardID,
		TokenTxTime:  b.TokenTxTime,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) FindByServiceDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).Where("service_date = ?", date).Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// DeleteByID is idempotent: deleting a missing id is not an error.
func (r *BookingRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, "id = ?", id).Error
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt)
	return cnt, tx.Error
}
