package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// LabCaseToResponse converts a LabCase entity to LabCaseResponse DTO
func LabCaseToResponse(labCase *entity.LabCase) *dto.LabCaseResponse {
	if labCase == nil {
		return nil
	}

	return &dto.LabCaseResponse{
		ID:         labCase.ID,
		PatientID:  labCase.PatientID,
		LabID:      labCase.LabID,
		CaseType:   labCase.CaseType,
		SentDate:   formatDatePtr(labCase.SentDate),
		DueDate:    formatDate(labCase.DueDate),
		ReturnDate: formatDatePtr(labCase.ReturnDate),
		Status:     string(labCase.Status),
		LabCost:    labCase.LabCost,
		Notes:      labCase.Notes,
		CreatedAt:  labCase.CreatedAt,
		UpdatedAt:  labCase.UpdatedAt,
	}
}

// LabCasesToResponses converts a slice of LabCase entities to slice of LabCaseResponse DTOs
func LabCasesToResponses(cases []entity.LabCase) []dto.LabCaseResponse {
	responses := make([]dto.LabCaseResponse, len(cases))
	for i := range cases {
		responses[i] = *LabCaseToResponse(&cases[i])
	}
	return responses
}
