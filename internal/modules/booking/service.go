package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"yachtbooking/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	yachts   YachtRepository
	events   EventPublisher
	log      *zap.Logger

	// mu serialises the availability check and the following write so
	// two concurrent requests cannot double-book the same slot.
	mu sync.Mutex
}

func NewService(bookings BookingRepository, yachts YachtRepository, events EventPublisher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		bookings: bookings,
		yachts:   yachts,
		events:   events,
		log:      log,
	}
}

func (s *Service) ListBookings(ctx context.Context, date string) ([]domain.Booking, error) {
	if date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, ErrValidation
		}
		return s.bookings.FindByServiceDate(ctx, date)
	}
	return s.bookings.GetAll(ctx)
}

func (s *Service) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if _, err := time.Parse(dateLayout, req.ServiceDate); err != nil {
		return nil, ErrValidation
	}

	yacht, err := s.yachts.GetByID(ctx, req.YachtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrYachtNotFound
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAvailability(ctx, req.YachtID, req.SlotID, req.ServiceDate, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &domain.Booking{
		ID:           uuid.NewString(),
		BookingCode:  generateBookingCode(now),
		YachtID:      req.YachtID,
		YachtName:    yacht.Name, // snapshot
		SlotID:       req.SlotID,
		ServiceDate:  req.ServiceDate,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
		Status:       domain.BookingPending,
		Notes:        req.Notes,
		CancelReason: req.CancelReason,
		RewardID:     req.RewardID,
		TokenTxTime:  req.TokenTxTime,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.EmailSent != nil {
		b.EmailSent = *req.EmailSent
	}

	s.applySlotDetail(b, yacht)

	if err := s.bookings.Create(ctx, b); err != nil {
		if isUniqueViolation(err) {
			// booking code collision; one retry with a fresh token
			b.BookingCode = generateBookingCode(now)
			err = s.bookings.Create(ctx, b)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.events != nil {
		s.events.Publish("booking.created", b)
	}
	return b, nil
}

func (s *Service) UpdateBooking(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	// Effective slot coordinates: request value where present, stored
	// value otherwise.
	targetYachtID := b.YachtID
	if req.YachtID != nil {
		targetYachtID = *req.YachtID
	}
	targetSlotID := b.SlotID
	if req.SlotID != nil {
		targetSlotID = *req.SlotID
	}
	targetDate := b.ServiceDate
	if req.ServiceDate != nil {
		if _, err := time.Parse(dateLayout, *req.ServiceDate); err != nil {
			return nil, ErrValidation
		}
		targetDate = *req.ServiceDate
	}

	slotChanged := targetYachtID != b.YachtID ||
		targetSlotID != b.SlotID ||
		targetDate != b.ServiceDate

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-saving an unchanged booking must not collide with itself, so
	// the availability check only runs when the slot actually moves.
	if slotChanged {
		if err := s.checkAvailability(ctx, targetYachtID, targetSlotID, targetDate, id); err != nil {
			return nil, err
		}
	}

	b.YachtID = targetYachtID
	b.SlotID = targetSlotID
	b.ServiceDate = targetDate

	if req.CustomerName != nil {
		b.CustomerName = *req.CustomerName
	}
	if req.Phone != nil {
		b.Phone = *req.Phone
	}
	if req.Email != nil {
		b.Email = *req.Email
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.EmailSent != nil {
		b.EmailSent = *req.EmailSent
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}
	if req.CancelReason != nil {
		b.CancelReason = *req.CancelReason
	}
	if req.RewardID != nil {
		b.RewardID = *req.RewardID
	}
	if req.TokenTxTime != nil {
		b.TokenTxTime = *req.TokenTxTime
	}

	if slotChanged {
		yacht, err := s.yachts.GetByID(ctx, b.YachtID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrYachtNotFound
			}
			return nil, err
		}
		b.YachtName = yacht.Name
		s.applySlotDetail(b, yacht)
	}

	b.UpdatedAt = time.Now()

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("booking.updated", b)
	}
	return b, nil
}

// DeleteBooking removes the booking unconditionally; a missing id is not
// an error.
func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	if err := s.bookings.DeleteByID(ctx, id); err != nil {
		return err
	}
	if s.events != nil {
		s.events.Publish("booking.deleted", map[string]string{"id": id})
	}
	return nil
}

func (s *Service) checkAvailability(ctx context.Context, yachtID, slotID, date, excludeID string) error {
	existing, err := s.bookings.FindByServiceDate(ctx, date)
	if err != nil {
		return err
	}
	if slotTaken(existing, yachtID, slotID, excludeID) {
		return ErrSlotConflict
	}
	return nil
}

// applySlotDetail refreshes the slot snapshot from the yacht schedule.
// Unresolved lookups leave the timing blank and are logged as a data
// quality concern, not surfaced as errors.
func (s *Service) applySlotDetail(b *domain.Booking, yacht *domain.Yacht) {
	d, ok := resolveSlotDetail(yacht, b.ServiceDate, b.SlotID)
	if !ok {
		b.SlotLabel = ""
		b.SlotStart = ""
		b.SlotEnd = ""
		s.log.Warn("slot not found in yacht schedule, storing booking without slot timing",
			zap.String("yacht_id", yacht.ID),
			zap.String("slot_id", b.SlotID),
			zap.String("service_date", b.ServiceDate),
		)
		return
	}
	b.SlotLabel = d.Label
	b.SlotStart = d.Start
	b.SlotEnd = d.End
}

func generateBookingCode(now time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("YB-%d-%s", now.Year(), token)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
