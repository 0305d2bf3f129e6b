package yacht

import "yachtbooking/internal/domain"

type CreateYachtRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Capacity    int              `json:"capacity" validate:"gte=0"`
	IsActive    *bool            `json:"isActive"`
	YachtType   domain.YachtType `json:"yachtType"`

	TimeSlots     []domain.TimeSlot            `json:"timeSlots"`
	DateOverrides map[string][]domain.TimeSlot `json:"dateOverrides"`
}

// UpdateYachtRequest carries a pointer per field; absent fields leave the
// stored value unchanged. TimeSlots and DateOverrides are replaced
// wholesale when present.
type UpdateYachtRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Capacity    *int              `json:"capacity"`
	IsActive    *bool             `json:"isActive"`
	YachtType   *domain.YachtType `json:"yachtType"`

	TimeSlots     *[]domain.TimeSlot            `json:"timeSlots"`
	DateOverrides *map[string][]domain.TimeSlot `json:"dateOverrides"`
}
