package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// TreatmentDefinitionToResponse converts a TreatmentDefinition entity to TreatmentDefinitionResponse DTO
func TreatmentDefinitionToResponse(def *entity.TreatmentDefinition) *dto.TreatmentDefinitionResponse {
	if def == nil {
		return nil
	}

	return &dto.TreatmentDefinitionResponse{
		ID:               def.ID,
		Name:             def.Name,
		Description:      def.Description,
		BasePrice:        def.BasePrice,
		DoctorPercentage: def.DoctorPercentage,
		ClinicPercentage: def.ClinicPercentage,
		CreatedAt:        def.CreatedAt,
		UpdatedAt:        def.UpdatedAt,
	}
}

// TreatmentDefinitionsToResponses converts a slice of TreatmentDefinition entities to slice of TreatmentDefinitionResponse DTOs
func TreatmentDefinitionsToResponses(defs []entity.TreatmentDefinition) []dto.TreatmentDefinitionResponse {
	responses := make([]dto.TreatmentDefinitionResponse, len(defs))
	for i := range defs {
		responses[i] = *TreatmentDefinitionToResponse(&defs[i])
	}
	return responses
}

func consumedItemsToResponses(items entity.ConsumedItems) []dto.ConsumedItemResponse {
	if len(items) == 0 {
		return nil
	}
	responses := make([]dto.ConsumedItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.ConsumedItemResponse{
			InventoryItemID: item.InventoryItemID,
			Quantity:        item.Quantity,
			Cost:            item.Cost,
		}
	}
	return responses
}

// TreatmentRecordToResponse converts a TreatmentRecord entity to TreatmentRecordResponse DTO
func TreatmentRecordToResponse(record *entity.TreatmentRecord) *dto.TreatmentRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.TreatmentRecordResponse{
		ID:                    record.ID,
		PatientID:             record.PatientID,
		DentistID:             record.DentistID,
		TreatmentDefinitionID: record.TreatmentDefinitionID,
		TreatmentDate:         formatDate(record.TreatmentDate),
		Notes:                 record.Notes,
		InventoryItemsUsed:    consumedItemsToResponses(record.InventoryItemsUsed),
		TotalTreatmentCost:    record.TotalTreatmentCost,
		DoctorShare:           record.DoctorShare,
		ClinicShare:           record.ClinicShare,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}
}

// TreatmentRecordsToResponses converts a slice of TreatmentRecord entities to slice of TreatmentRecordResponse DTOs
func TreatmentRecordsToResponses(records []entity.TreatmentRecord) []dto.TreatmentRecordResponse {
	responses := make([]dto.TreatmentRecordResponse, len(records))
	for i := range records {
		responses[i] = *TreatmentRecordToResponse(&records[i])
	}
	return responses
}
