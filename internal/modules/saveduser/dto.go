package saveduser

import "yachtbooking/internal/domain"

type CreateSavedUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" validate:"omitempty,email"`
	Phone    string          `json:"phone"`
	UserType domain.UserType `json:"userType"`
	Notes    string          `json:"notes"`
}

// UpdateSavedUserRequest: absent fields leave stored values unchanged.
type UpdateSavedUserRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email"`
	Phone    *string          `json:"phone"`
	UserType *domain.UserType `json:"userType"`
	IsActive *bool            `json:"isActive"`
	Notes    *string          `json:"notes"`
}
