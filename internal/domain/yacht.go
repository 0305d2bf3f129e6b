package domain

import "time"

type YachtType string

const (
	YachtRegular    YachtType = "REGULAR"
	YachtFractional YachtType = "FRACTIONAL"
)

// TimeSlot is a bookable window on a yacht. Start/End are "HH:MM"
// times of day, Label is the human-facing name shown in the dashboard.
type TimeSlot struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

type Yacht struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	IsActive    bool      `json:"isActive"`
	YachtType   YachtType `json:"yachtType,omitempty"`

	// Default schedule, valid on any date without an override.
	TimeSlots []TimeSlot `json:"timeSlots"`

	// Per-date replacement schedules, keyed by "YYYY-MM-DD". An entry
	// supersedes TimeSlots for that date only.
	DateOverrides map[string][]TimeSlot `json:"dateOverrides,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
