package booking

import (
	"context"
	"testing"
	"time"

	"yachtbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByServiceDate(ctx context.Context, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockYachtRepository struct {
	mock.Mock
}

func (m *MockYachtRepository) GetByID(ctx context.Context, id string) (*domain.Yacht, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Yacht), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(eventType string, data any) {
	m.Called(eventType, data)
}

func blueOcean() *domain.Yacht {
	return &domain.Yacht{
		ID:   "1",
		Name: "Blue Ocean",
		TimeSlots: []domain.TimeSlot{
			{ID: "slot-1a", Start: "09:00", End: "11:00", Label: "Morning Cruise"},
			{ID: "slot-1b", Start: "13:00", End: "15:00", Label: "Afternoon Cruise"},
		},
	}
}

func TestService_CreateBooking_DefaultsAndSnapshot(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "slot-1a",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somchai Jaidee",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.False(t, b.EmailSent)
	assert.Equal(t, "Blue Ocean", b.YachtName)
	assert.Equal(t, "Morning Cruise", b.SlotLabel)
	assert.Equal(t, "09:00", b.SlotStart)
	assert.Equal(t, "11:00", b.SlotEnd)
	assert.NotEmpty(t, b.ID)
	assert.Regexp(t, `^YB-\d{4}-[0-9A-F]{8}$`, b.BookingCode)
	mockBookings.AssertExpectations(t)
}

func TestService_CreateBooking_ExplicitStatusKept(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	status := domain.BookingConfirmed
	sent := true
	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "slot-1a",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somchai Jaidee",
		Status:       &status,
		EmailSent:    &sent,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.True(t, b.EmailSent)
}

func TestService_CreateBooking_Conflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{
		{ID: "b1", YachtID: "1", SlotID: "slot-1a", Status: domain.BookingConfirmed},
	}, nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "slot-1a",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somying Rakloke",
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_CancelledFreesSlot(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{
		{ID: "b1", YachtID: "1", SlotID: "slot-1a", Status: domain.BookingCancelled},
	}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "slot-1a",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somying Rakloke",
	})

	assert.NoError(t, err)
}

func TestService_CreateBooking_RetriesOnCodeCollision(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	service := NewService(mockBookings, mockYachts, nil, nil)

	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "slot-1a",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somchai Jaidee",
	})

	assert.NoError(t, err)
	assert.Regexp(t, `^YB-\d{4}-[0-9A-F]{8}$`, b.BookingCode)
	mockBookings.AssertNumberOfCalls(t, "Create", 2)
}

func TestService_CreateBooking_NoRetryOnOtherErrors(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrInvalidData)

	service := NewService(mockBookings, mockYachts, nil, nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "slot-1a",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somchai Jaidee",
	})

	assert.ErrorIs(t, err, gorm.ErrInvalidData)
	mockBookings.AssertNumberOfCalls(t, "Create", 1)
}

func TestService_CreateBooking_YachtNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockYachts.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockYachts, nil, nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "missing",
		SlotID:       "slot-1a",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somchai Jaidee",
	})

	assert.ErrorIs(t, err, ErrYachtNotFound)
}

func TestService_CreateBooking_BadDate(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockYachtRepository), nil, nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "slot-1a",
		ServiceDate:  "15/01/2026",
		CustomerName: "Somchai Jaidee",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_UnresolvedSlotStoredBlank(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "ghost-slot",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somchai Jaidee",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ghost-slot", b.SlotID)
	assert.Empty(t, b.SlotLabel)
	assert.Empty(t, b.SlotStart)
	assert.Empty(t, b.SlotEnd)
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           "b1",
		BookingCode:  "YB-2026-0001",
		YachtID:      "1",
		YachtName:    "Blue Ocean",
		SlotID:       "slot-1a",
		SlotLabel:    "Morning Cruise",
		SlotStart:    "09:00",
		SlotEnd:      "11:00",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somchai Jaidee",
		Status:       domain.BookingConfirmed,
		CreatedAt:    time.Date(2026, 1, 9, 10, 30, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 1, 9, 10, 30, 0, 0, time.UTC),
	}
}

func TestService_UpdateBooking_NotesOnlySkipsAvailabilityCheck(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	before := existingBooking()
	mockBookings.On("GetByID", mock.Anything, "b1").Return(before, nil)
	mockBookings.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	notes := "bring cake"
	b, err := service.UpdateBooking(context.Background(), "b1", UpdateBookingRequest{
		Notes: &notes,
	})

	assert.NoError(t, err)
	assert.Equal(t, "bring cake", b.Notes)
	// snapshot untouched, updatedAt refreshed
	assert.Equal(t, "Morning Cruise", b.SlotLabel)
	assert.Equal(t, "09:00", b.SlotStart)
	assert.True(t, b.UpdatedAt.After(time.Date(2026, 1, 9, 10, 30, 0, 0, time.UTC)))
	mockBookings.AssertNotCalled(t, "FindByServiceDate", mock.Anything, mock.Anything)
	mockYachts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_UpdateBooking_SameSlotResaveDoesNotConflictWithSelf(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockBookings.On("GetByID", mock.Anything, "b1").Return(existingBooking(), nil)
	mockBookings.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	// explicitly re-sending the stored values is still "unchanged"
	yachtID, slotID, date := "1", "slot-1a", "2026-01-15"
	_, err := service.UpdateBooking(context.Background(), "b1", UpdateBookingRequest{
		YachtID:     &yachtID,
		SlotID:      &slotID,
		ServiceDate: &date,
	})

	assert.NoError(t, err)
	mockBookings.AssertNotCalled(t, "FindByServiceDate", mock.Anything, mock.Anything)
}

func TestService_UpdateBooking_SlotChangeRevalidatesAndRefreshesSnapshot(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockBookings.On("GetByID", mock.Anything, "b1").Return(existingBooking(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{
		*existingBooking(), // itself, excluded by id
	}, nil)
	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	slotID := "slot-1b"
	b, err := service.UpdateBooking(context.Background(), "b1", UpdateBookingRequest{
		SlotID: &slotID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "slot-1b", b.SlotID)
	assert.Equal(t, "Afternoon Cruise", b.SlotLabel)
	assert.Equal(t, "13:00", b.SlotStart)
	assert.Equal(t, "15:00", b.SlotEnd)
}

func TestService_UpdateBooking_SlotChangeConflicts(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	mockBookings.On("GetByID", mock.Anything, "b1").Return(existingBooking(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{
		{ID: "b2", YachtID: "1", SlotID: "slot-1b", Status: domain.BookingPending},
	}, nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	slotID := "slot-1b"
	_, err := service.UpdateBooking(context.Background(), "b1", UpdateBookingRequest{
		SlotID: &slotID,
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	mockBookings.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_UpdateBooking_YachtChangeResnapshotsName(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)

	sunset := &domain.Yacht{
		ID:   "2",
		Name: "Sunset Dream",
		TimeSlots: []domain.TimeSlot{
			{ID: "slot-2a", Start: "16:00", End: "18:00", Label: "Sunset Run 1"},
		},
	}

	mockBookings.On("GetByID", mock.Anything, "b1").Return(existingBooking(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{}, nil)
	mockYachts.On("GetByID", mock.Anything, "2").Return(sunset, nil)
	mockBookings.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockYachts, nil, nil)

	yachtID, slotID := "2", "slot-2a"
	b, err := service.UpdateBooking(context.Background(), "b1", UpdateBookingRequest{
		YachtID: &yachtID,
		SlotID:  &slotID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Sunset Dream", b.YachtName)
	assert.Equal(t, "Sunset Run 1", b.SlotLabel)
}

func TestService_UpdateBooking_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, new(MockYachtRepository), nil, nil)

	_, err := service.UpdateBooking(context.Background(), "missing", UpdateBookingRequest{})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_DeleteBooking_IdempotentAndPublishes(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventPublisher)

	mockBookings.On("DeleteByID", mock.Anything, "ghost").Return(nil)
	mockEvents.On("Publish", "booking.deleted", mock.Anything).Return()

	service := NewService(mockBookings, new(MockYachtRepository), mockEvents, nil)

	assert.NoError(t, service.DeleteBooking(context.Background(), "ghost"))
	mockEvents.AssertCalled(t, "Publish", "booking.deleted", mock.Anything)
}

func TestService_ListBookings_DateFilter(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{
		*existingBooking(),
	}, nil)

	service := NewService(mockBookings, new(MockYachtRepository), nil, nil)

	out, err := service.ListBookings(context.Background(), "2026-01-15")
	assert.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = service.ListBookings(context.Background(), "not-a-date")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_PublishesEvent(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockYachts := new(MockYachtRepository)
	mockEvents := new(MockEventPublisher)

	mockYachts.On("GetByID", mock.Anything, "1").Return(blueOcean(), nil)
	mockBookings.On("FindByServiceDate", mock.Anything, "2026-01-15").Return([]domain.Booking{}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("Publish", "booking.created", mock.Anything).Return()

	service := NewService(mockBookings, mockYachts, mockEvents, nil)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		YachtID:      "1",
		SlotID:       "slot-1a",
		ServiceDate:  "2026-01-15",
		CustomerName: "Somchai Jaidee",
	})

	assert.NoError(t, err)
	mockEvents.AssertCalled(t, "Publish", "booking.created", mock.Anything)
}
