package domain

import "time"

type UserType string

const (
	UserRegular    UserType = "REGULAR"
	UserFractional UserType = "FRACTIONAL"
)

// SavedUser is a pre-registered customer profile used for quick booking
// entry. It is a convenience lookup only; bookings never reference it.
type SavedUser struct {
	ID       string `json:"id"`
	UserCode string `json:"userId"` // e.g. "U-7C19D0AB"

	Name  string `json:"name" validate:"required"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	UserType UserType `json:"userType"`
	IsActive bool     `json:"isActive"`
	Notes    string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
