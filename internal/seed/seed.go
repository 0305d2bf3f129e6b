package seed

import (
	"context"
	"time"

	"yachtbooking/internal/domain"
	"yachtbooking/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Run loads the demo dataset. Each seeder skips its table when data is
// already present, so running it repeatedly is safe.
func Run(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	yachts := repository.NewYachtRepository(db)
	bookings := repository.NewBookingRepository(db)
	users := repository.NewSavedUserRepository(db)

	if err := seedYachts(ctx, yachts, log); err != nil {
		return err
	}
	if err := seedBookings(ctx, bookings, log); err != nil {
		return err
	}
	return seedSavedUsers(ctx, users, log)
}

func seedYachts(ctx context.Context, repo *repository.YachtRepository, log *zap.Logger) error {
	cnt, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if cnt > 0 {
		log.Info("yachts already exist, skipping seed")
		return nil
	}

	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	yachts := []domain.Yacht{
		{
			ID:          "1",
			Name:        "Blue Ocean",
			Description: "Luxury yacht, 20 seats",
			Capacity:    20,
			IsActive:    true,
			YachtType:   domain.YachtRegular,
			TimeSlots: []domain.TimeSlot{
				{ID: "slot-1a", Start: "09:00", End: "11:00", Label: "Morning Cruise"},
				{ID: "slot-1b", Start: "13:00", End: "15:00", Label: "Afternoon Cruise"},
				{ID: "slot-1c", Start: "16:00", End: "18:00", Label: "Evening Cruise"},
			},
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		{
			ID:          "2",
			Name:        "Sunset Dream",
			Description: "Sunset cruiser, 15 seats",
			Capacity:    15,
			IsActive:    true,
			YachtType:   domain.YachtRegular,
			TimeSlots: []domain.TimeSlot{
				{ID: "slot-2a", Start: "16:00", End: "18:00", Label: "Sunset Run 1"},
				{ID: "slot-2b", Start: "18:00", End: "20:00", Label: "Sunset Run 2"},
			},
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		{
			ID:          "3",
			Name:        "Sea Explorer",
			Description: "Exploration vessel, 30 seats",
			Capacity:    30,
			IsActive:    true,
			YachtType:   domain.YachtRegular,
			TimeSlots: []domain.TimeSlot{
				{ID: "slot-3a", Start: "08:00", End: "12:00", Label: "Morning Half Day"},
				{ID: "slot-3b", Start: "13:00", End: "17:00", Label: "Afternoon Half Day"},
			},
			DateOverrides: map[string][]domain.TimeSlot{
				"2026-01-15": {
					{ID: "special-3a", Start: "09:00", End: "17:00", Label: "Full Day Special"},
				},
			},
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		{
			ID:          "4",
			Name:        "Cokoa",
			Description: "Fractional yacht, 15 seats",
			Capacity:    15,
			IsActive:    true,
			YachtType:   domain.YachtFractional,
			TimeSlots: []domain.TimeSlot{
				{ID: "slot-4a", Start: "09:00", End: "12:00", Label: "Morning Cruise"},
				{ID: "slot-4b", Start: "14:00", End: "17:00", Label: "Afternoon Cruise"},
			},
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}

	for i := range yachts {
		if err := repo.Create(ctx, &yachts[i]); err != nil {
			return err
		}
	}

	log.Info("seeded yachts", zap.Int("count", len(yachts)))
	return nil
}

func seedBookings(ctx context.Context, repo *repository.BookingRepository, log *zap.Logger) error {
	cnt, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if cnt > 0 {
		log.Info("bookings already exist, skipping seed")
		return nil
	}

	at := func(day, hour, min int) time.Time {
		return time.Date(2026, 1, day, hour, min, 0, 0, time.UTC)
	}

	bookings := []domain.Booking{
		{
			BookingCode: "YB-2026-0001",
			YachtID:     "1", YachtName: "Blue Ocean",
			SlotID: "slot-1a", SlotLabel: "Morning Cruise", SlotStart: "09:00", SlotEnd: "11:00",
			ServiceDate:  "2026-01-15",
			CustomerName: "Somchai Jaidee",
			Phone:        "081-234-5678", Email: "somchai@email.com",
			RewardID: "RW-12345", TokenTxTime: "10:30",
			Status: domain.BookingConfirmed, EmailSent: true,
			CreatedAt: at(9, 10, 30), UpdatedAt: at(9, 10, 30),
		},
		{
			BookingCode: "YB-2026-0002",
			YachtID:     "1", YachtName: "Blue Ocean",
			SlotID: "slot-1b", SlotLabel: "Afternoon Cruise", SlotStart: "13:00", SlotEnd: "15:00",
			ServiceDate:  "2026-01-15",
			CustomerName: "Somying Rakloke",
			Phone:        "089-876-5432", Email: "somying@email.com",
			RewardID: "RW-67890", TokenTxTime: "14:00",
			Status: domain.BookingPending, EmailSent: false,
			Notes:     "VIP customer",
			CreatedAt: at(10, 14, 0), UpdatedAt: at(10, 14, 0),
		},
		{
			BookingCode: "YB-2026-0003",
			YachtID:     "2", YachtName: "Sunset Dream",
			SlotID: "slot-2a", SlotLabel: "Sunset Run 1", SlotStart: "16:00", SlotEnd: "18:00",
			ServiceDate:  "2026-01-16",
			CustomerName: "Wichai Mangmee",
			Phone:        "062-111-2222", Email: "wichai@email.com",
			RewardID: "RW-11111", TokenTxTime: "09:00",
			Status: domain.BookingProcessing, EmailSent: true,
			CreatedAt: at(8, 9, 0), UpdatedAt: at(8, 9, 0),
		},
		{
			BookingCode: "YB-2026-0004",
			YachtID:     "3", YachtName: "Sea Explorer",
			SlotID: "slot-3a", SlotLabel: "Morning Half Day", SlotStart: "08:00", SlotEnd: "12:00",
			ServiceDate:  "2026-01-17",
			CustomerName: "Arun Tuenchao",
			Phone:        "091-333-4444", Email: "arun@email.com",
			RewardID: "RW-22222", TokenTxTime: "11:30",
			Status: domain.BookingConfirmed, EmailSent: true,
			Notes:     "Family of five",
			CreatedAt: at(7, 11, 30), UpdatedAt: at(7, 11, 30),
		},
		{
			BookingCode: "YB-2026-0005",
			YachtID:     "2", YachtName: "Sunset Dream",
			SlotID: "slot-2b", SlotLabel: "Sunset Run 2", SlotStart: "16:00", SlotEnd: "18:00",
			ServiceDate:  "2026-01-15",
			CustomerName: "Prapa Saengchan",
			Phone:        "084-555-6666", Email: "prapa@email.com",
			RewardID: "RW-33333", TokenTxTime: "16:00",
			Status: domain.BookingCancelled, EmailSent: true,
			CancelReason: "Customer requested cancellation",
			CreatedAt:    at(6, 16, 0), UpdatedAt: at(10, 10, 0),
		},
		{
			BookingCode: "YB-2026-0006",
			YachtID:     "1", YachtName: "Blue Ocean",
			SlotID: "slot-1c", SlotLabel: "Evening Cruise", SlotStart: "16:00", SlotEnd: "18:00",
			ServiceDate:  "2026-01-15",
			CustomerName: "Tony Stark",
			Phone:        "099-999-9999", Email: "ironman@avengers.com",
			RewardID: "RW-99999", TokenTxTime: "09:00",
			Status: domain.BookingConfirmed, EmailSent: true,
			Notes:     "Requested rock playlist",
			CreatedAt: at(12, 9, 0), UpdatedAt: at(12, 9, 0),
		},
		{
			BookingCode: "YB-2026-0007",
			YachtID:     "3", YachtName: "Sea Explorer",
			SlotID: "special-3a", SlotLabel: "Full Day Special", SlotStart: "09:00", SlotEnd: "17:00",
			ServiceDate:  "2026-01-15",
			CustomerName: "Monkey D. Luffy",
			Phone:        "088-777-6666", Email: "luffy@pirate.com",
			RewardID: "RW-PIRATE", TokenTxTime: "10:00",
			Status: domain.BookingConfirmed, EmailSent: true,
			Notes:     "Extra catering",
			CreatedAt: at(13, 10, 0), UpdatedAt: at(13, 10, 0),
		},
	}

	for i := range bookings {
		bookings[i].ID = uuid.NewString()
		if err := repo.Create(ctx, &bookings[i]); err != nil {
			return err
		}
	}

	log.Info("seeded bookings", zap.Int("count", len(bookings)))
	return nil
}

func seedSavedUsers(ctx context.Context, repo *repository.SavedUserRepository, log *zap.Logger) error {
	cnt, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if cnt > 0 {
		log.Info("saved users already exist, skipping seed")
		return nil
	}

	now := time.Now()

	users := []domain.SavedUser{
		{
			UserCode: "U-0001",
			Name:     "Somchai Jaidee",
			Email:    "somchai@email.com",
			Phone:    "081-234-5678",
			UserType: domain.UserRegular,
			IsActive: true,
			Notes:    "Repeat customer",
		},
		{
			UserCode: "U-0002",
			Name:     "Somying Rakloke",
			Email:    "somying@email.com",
			Phone:    "089-876-5432",
			UserType: domain.UserRegular,
			IsActive: true,
			Notes:    "VIP customer",
		},
		{
			UserCode: "U-0003",
			Name:     "Tod Fractional",
			Email:    "tod@fractional.com",
			Phone:    "026-161-651",
			UserType: domain.UserFractional,
			IsActive: true,
			Notes:    "Cokoa shareholder",
		},
		{
			UserCode: "U-0004",
			Name:     "Weera Naklongtun",
			Email:    "weera@investor.com",
			Phone:    "091-999-8888",
			UserType: domain.UserFractional,
			IsActive: true,
			Notes:    "Fractional owner",
		},
	}

	for i := range users {
		users[i].ID = uuid.NewString()
		users[i].CreatedAt = now
		users[i].UpdatedAt = now
		if err := repo.Create(ctx, &users[i]); err != nil {
			return err
		}
	}

	log.Info("seeded saved users", zap.Int("count", len(users)))
	return nil
}
