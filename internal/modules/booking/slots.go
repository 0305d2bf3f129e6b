package booking

import "yachtbooking/internal/domain"

// slotDetail is the resolved label/timing snapshot stored on a booking.
type slotDetail struct {
	Label string
	Start string
	End   string
}

// resolveSlotDetail looks up slotID in the yacht's schedule for the given
// service date. Resolution order:
//
//  1. the override list for exactly serviceDate — an override match wins
//     even when a default slot carries the same id;
//  2. the default slot list;
//  3. every other override list, in map iteration order. This is a
//     best-effort rescue for legacy data whose slot id only exists under
//     another date; the match may belong to a different day.
//
// An unresolved slot is not an error: the caller stores the booking with
// blank timing fields.
func resolveSlotDetail(y *domain.Yacht, serviceDate, slotID string) (slotDetail, bool) {
	if y == nil || slotID == "" {
		return slotDetail{}, false
	}

	if serviceDate != "" {
		if slots, ok := y.DateOverrides[serviceDate]; ok {
			if d, ok := findSlot(slots, slotID); ok {
				return d, true
			}
		}
	}

	if d, ok := findSlot(y.TimeSlots, slotID); ok {
		return d, true
	}

	for _, slots := range y.DateOverrides {
		if d, ok := findSlot(slots, slotID); ok {
			return d, true
		}
	}

	return slotDetail{}, false
}

func findSlot(slots []domain.TimeSlot, slotID string) (slotDetail, bool) {
	for _, s := range slots {
		if s.ID == slotID {
			return slotDetail{Label: s.Label, Start: s.Start, End: s.End}, true
		}
	}
	return slotDetail{}, false
}

// slotTaken reports whether any booking in existing occupies the target
// yacht+slot. Callers pass the bookings of a single service date.
// CANCELLED bookings never block, and excludeID lets an update skip the
// booking being re-saved.
func slotTaken(existing []domain.Booking, yachtID, slotID, excludeID string) bool {
	for _, b := range existing {
		if b.ID == excludeID {
			continue
		}
		if b.YachtID == yachtID && b.SlotID == slotID && b.Status != domain.BookingCancelled {
			return true
		}
	}
	return false
}
