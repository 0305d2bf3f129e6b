package booking

import "yachtbooking/internal/domain"

type CreateBookingRequest struct {
	YachtID      string `json:"yachtId" binding:"required"`
	SlotID       string `json:"slotId" binding:"required"`
	ServiceDate  string `json:"serviceDate" binding:"required" validate:"datetime=2006-01-02"`
	CustomerName string `json:"customerName" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`

	Status    *domain.BookingStatus `json:"status"`
	EmailSent *bool                 `json:"emailSent"`

	Notes        string `json:"notes"`
	CancelReason string `json:"cancelReason"`
	RewardID     string `json:"rewardId"`
	TokenTxTime  string `json:"tokenTxTime"`
}

// UpdateBookingRequest uses a pointer per field: absent (or null) fields
// never overwrite the stored value. Clearing to a default is not
// supported, matching the partial-update contract.
type UpdateBookingRequest struct {
	YachtID     *string `json:"yachtId"`
	SlotID      *string `json:"slotId"`
	ServiceDate *string `json:"serviceDate"`

	CustomerName *string `json:"customerName"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`

	Status    *domain.BookingStatus `json:"status"`
	EmailSent *bool                 `json:"emailSent"`

	Notes        *string `json:"notes"`
	CancelReason *string `json:"cancelReason"`
	RewardID     *string `json:"rewardId"`
	TokenTxTime  *string `json:"tokenTxTime"`
}
