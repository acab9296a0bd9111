package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// DentistToResponse converts a Dentist entity to DentistResponse DTO
func DentistToResponse(dentist *entity.Dentist) *dto.DentistResponse {
	if dentist == nil {
		return nil
	}

	return &dto.DentistResponse{
		ID:        dentist.ID,
		Name:      dentist.Name,
		Specialty: dentist.Specialty,
		Color:     dentist.Color,
		CreatedAt: dentist.CreatedAt,
		UpdatedAt: dentist.UpdatedAt,
	}
}

// DentistsToResponses converts a slice of Dentist entities to slice of DentistResponse DTOs
func DentistsToResponses(dentists []entity.Dentist) []dto.DentistResponse {
	responses := make([]dto.DentistResponse, len(dentists))
	for i := range dentists {
		responses[i] = *DentistToResponse(&dentists[i])
	}
	return responses
}
