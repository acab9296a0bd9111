package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                    patient.ID,
		Name:                  patient.Name,
		DateOfBirth:           formatDate(patient.DateOfBirth),
		Gender:                string(patient.Gender),
		Phone:                 patient.Phone,
		Email:                 patient.Email,
		Address:               patient.Address,
		MedicalHistory:        patient.MedicalHistory,
		TreatmentNotes:        patient.TreatmentNotes,
		Allergies:             patient.Allergies,
		Medications:           patient.Medications,
		InsuranceProvider:     patient.InsuranceProvider,
		InsurancePolicyNumber: patient.InsurancePolicyNumber,
		EmergencyContactName:  patient.EmergencyContactName,
		EmergencyContactPhone: patient.EmergencyContactPhone,
		LastVisit:             formatDatePtr(patient.LastVisit),
		DentalChart:           patient.DentalChart,
		CreatedAt:             patient.CreatedAt,
		UpdatedAt:             patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
