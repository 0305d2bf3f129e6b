package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingProcessing BookingStatus = "PROCESSING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingUsed       BookingStatus = "USED"
	BookingNoShow     BookingStatus = "NO_SHOW"
	BookingCancelled  BookingStatus = "CANCELLED"
)

// Booking is a reservation of one yacht slot on one service date.
// YachtName and the Slot* fields are snapshots captured at write time so
// later schedule edits don't rewrite historical bookings.
type Booking struct {
	ID          string `json:"id"`
	BookingCode string `json:"bookingId"` // e.g. "YB-2026-4F2A91C3"

	YachtID   string `json:"yachtId"`
	YachtName string `json:"yachtName"`

	SlotID    string `json:"slotId"`
	SlotLabel string `json:"slotLabel,omitempty"`
	SlotStart string `json:"slotStart,omitempty"`
	SlotEnd   string `json:"slotEnd,omitempty"`

	ServiceDate string `json:"serviceDate"` // "YYYY-MM-DD"

	CustomerName string `json:"customerName"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`

	Status    BookingStatus `json:"status"`
	EmailSent bool          `json:"emailSent"`

	Notes        string `json:"notes,omitempty"`
	CancelReason string `json:"cancelReason,omitempty"`

	RewardID    string `json:"rewardId,omitempty"`
	TokenTxTime string `json:"tokenTxTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
