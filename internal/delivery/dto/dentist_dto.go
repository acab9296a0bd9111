package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDentistRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Specialty string `json:"specialty,omitempty" validate:"omitempty,max=255"`
	Color     string `json:"color,omitempty" validate:"omitempty,max=20"`
}

type UpdateDentistRequest struct {
	Name      string `json:"name" validate:"required,max=255"`
	Specialty string `json:"specialty,omitempty" validate:"omitempty,max=255"`
	Color     string `json:"color,omitempty" validate:"omitempty,max=20"`
}

type DentistResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DentistListResponse struct {
	Dentists []DentistResponse `json:"dentists"`
	Total    int               `json:"total"`
}
