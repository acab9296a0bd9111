package dto

import (
	"time"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	Name                  string `json:"name" validate:"required,max=255"`
	DateOfBirth           string `json:"date_of_birth" validate:"required"`
	Gender                string `json:"gender" validate:"required,oneof=Male Female Other"`
	Phone                 string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email                 string `json:"email,omitempty" validate:"omitempty,email"`
	Address               string `json:"address,omitempty"`
	MedicalHistory        string `json:"medical_history,omitempty"`
	TreatmentNotes        string `json:"treatment_notes,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	Medications           string `json:"medications,omitempty"`
	InsuranceProvider     string `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string `json:"insurance_policy_number,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
}

type UpdatePatientRequest struct {
	Name                  string `json:"name" validate:"required,max=255"`
	DateOfBirth           string `json:"date_of_birth" validate:"required"`
	Gender                string `json:"gender" validate:"required,oneof=Male Female Other"`
	Phone                 string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email                 string `json:"email,omitempty" validate:"omitempty,email"`
	Address               string `json:"address,omitempty"`
	MedicalHistory        string `json:"medical_history,omitempty"`
	TreatmentNotes        string `json:"treatment_notes,omitempty"`
	Allergies             string `json:"allergies,omitempty"`
	Medications           string `json:"medications,omitempty"`
	InsuranceProvider     string `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string `json:"insurance_policy_number,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
}

type UpdateToothRequest struct {
	Status string `json:"status" validate:"required,oneof=HEALTHY FILLING CROWN MISSING IMPLANT ROOT_CANAL CAVITY"`
	Notes  string `json:"notes"`
}

type PatientResponse struct {
	ID                    uuid.UUID          `json:"id"`
	Name                  string             `json:"name"`
	DateOfBirth           string             `json:"date_of_birth"`
	Gender                string             `json:"gender"`
	Phone                 string             `json:"phone,omitempty"`
	Email                 string             `json:"email,omitempty"`
	Address               string             `json:"address,omitempty"`
	MedicalHistory        string             `json:"medical_history,omitempty"`
	TreatmentNotes        string             `json:"treatment_notes,omitempty"`
	Allergies             string             `json:"allergies,omitempty"`
	Medications           string             `json:"medications,omitempty"`
	InsuranceProvider     string             `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string             `json:"insurance_policy_number,omitempty"`
	EmergencyContactName  string             `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string             `json:"emergency_contact_phone,omitempty"`
	LastVisit             string             `json:"last_visit,omitempty"`
	DentalChart           entity.DentalChart `json:"dental_chart"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
