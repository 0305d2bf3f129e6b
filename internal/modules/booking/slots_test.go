package booking

import (
	"testing"

	"yachtbooking/internal/domain"

	"github.com/stretchr/testify/assert"
)

func scheduleYacht() *domain.Yacht {
	return &domain.Yacht{
		ID:   "3",
		Name: "Sea Explorer",
		TimeSlots: []domain.TimeSlot{
			{ID: "slot-1a", Start: "09:00", End: "11:00", Label: "Morning Cruise"},
			{ID: "slot-3b", Start: "13:00", End: "17:00", Label: "Afternoon Half Day"},
		},
		DateOverrides: map[string][]domain.TimeSlot{
			"2026-01-15": {
				{ID: "slot-1a", Start: "09:00", End: "17:00", Label: "Full Day Special"},
			},
			"2026-01-20": {
				{ID: "legacy-x", Start: "10:00", End: "12:00", Label: "Legacy Run"},
			},
		},
	}
}

func TestResolveSlotDetail_OverrideWinsOverDefault(t *testing.T) {
	y := scheduleYacht()

	d, ok := resolveSlotDetail(y, "2026-01-15", "slot-1a")

	assert.True(t, ok)
	assert.Equal(t, "Full Day Special", d.Label)
	assert.Equal(t, "09:00", d.Start)
	assert.Equal(t, "17:00", d.End)
}

func TestResolveSlotDetail_DefaultWhenNoOverrideForDate(t *testing.T) {
	y := scheduleYacht()

	d, ok := resolveSlotDetail(y, "2026-02-01", "slot-1a")

	assert.True(t, ok)
	assert.Equal(t, "Morning Cruise", d.Label)
	assert.Equal(t, "11:00", d.End)
}

func TestResolveSlotDetail_CrossDateOverrideFallback(t *testing.T) {
	y := scheduleYacht()

	// legacy-x only exists under 2026-01-20; querying 2026-01-15 still
	// finds it through the best-effort scan
	d, ok := resolveSlotDetail(y, "2026-01-15", "legacy-x")

	assert.True(t, ok)
	assert.Equal(t, "Legacy Run", d.Label)
}

func TestResolveSlotDetail_UnknownSlotIsUnresolvedNotError(t *testing.T) {
	y := scheduleYacht()

	d, ok := resolveSlotDetail(y, "2026-01-15", "no-such-slot")

	assert.False(t, ok)
	assert.Empty(t, d.Label)
	assert.Empty(t, d.Start)
	assert.Empty(t, d.End)
}

func TestResolveSlotDetail_NilYachtOrEmptySlot(t *testing.T) {
	_, ok := resolveSlotDetail(nil, "2026-01-15", "slot-1a")
	assert.False(t, ok)

	_, ok = resolveSlotDetail(scheduleYacht(), "2026-01-15", "")
	assert.False(t, ok)
}

func TestResolveSlotDetail_EmptyDateSkipsOverrideLookup(t *testing.T) {
	y := scheduleYacht()

	d, ok := resolveSlotDetail(y, "", "slot-1a")

	assert.True(t, ok)
	assert.Equal(t, "Morning Cruise", d.Label)
}

func TestSlotTaken_CancelledNeverBlocks(t *testing.T) {
	existing := []domain.Booking{
		{ID: "b1", YachtID: "1", SlotID: "slot-1a", Status: domain.BookingCancelled},
	}

	assert.False(t, slotTaken(existing, "1", "slot-1a", ""))
}

func TestSlotTaken_AllActiveStatusesBlock(t *testing.T) {
	statuses := []domain.BookingStatus{
		domain.BookingPending,
		domain.BookingProcessing,
		domain.BookingConfirmed,
		domain.BookingUsed,
		domain.BookingNoShow,
	}

	for _, st := range statuses {
		existing := []domain.Booking{
			{ID: "b1", YachtID: "1", SlotID: "slot-1a", Status: st},
		}
		assert.True(t, slotTaken(existing, "1", "slot-1a", ""), "status %s should block", st)
	}
}

func TestSlotTaken_ExcludeSelfOnUpdate(t *testing.T) {
	existing := []domain.Booking{
		{ID: "b1", YachtID: "1", SlotID: "slot-1a", Status: domain.BookingConfirmed},
	}

	assert.True(t, slotTaken(existing, "1", "slot-1a", ""))
	assert.False(t, slotTaken(existing, "1", "slot-1a", "b1"))
}

func TestSlotTaken_DifferentYachtOrSlotIsFree(t *testing.T) {
	existing := []domain.Booking{
		{ID: "b1", YachtID: "1", SlotID: "slot-1a", Status: domain.BookingConfirmed},
	}

	assert.False(t, slotTaken(existing, "2", "slot-1a", ""))
	assert.False(t, slotTaken(existing, "1", "slot-1b", ""))
}
