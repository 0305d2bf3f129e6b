package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrYachtNotFound   = errors.New("yacht not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotConflict    = errors.New("slot is already booked")
)
