package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTreatmentDefinitionRequest struct {
	Name             string          `json:"name" validate:"required,max=255"`
	Description      string          `json:"description,omitempty"`
	BasePrice        decimal.Decimal `json:"base_price" validate:"required"`
	DoctorPercentage decimal.Decimal `json:"doctor_percentage" validate:"required"`
	ClinicPercentage decimal.Decimal `json:"clinic_percentage" validate:"required"`
}

type TreatmentDefinitionResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	BasePrice        decimal.Decimal `json:"base_price"`
	DoctorPercentage decimal.Decimal `json:"doctor_percentage"`
	ClinicPercentage decimal.Decimal `json:"clinic_percentage"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type TreatmentDefinitionListResponse struct {
	Definitions []TreatmentDefinitionResponse `json:"definitions"`
	Total       int                           `json:"total"`
}

// ConsumedItemRequest names an inventory item and quantity used during a
// treatment; the material cost is priced server-side from the item's unit cost.
type ConsumedItemRequest struct {
	InventoryItemID uuid.UUID `json:"inventory_item_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required,gt=0"`
}

type CreateTreatmentRecordRequest struct {
	PatientID             uuid.UUID             `json:"patient_id" validate:"required"`
	DentistID             uuid.UUID             `json:"dentist_id" validate:"required"`
	TreatmentDefinitionID uuid.UUID             `json:"treatment_definition_id" validate:"required"`
	TreatmentDate         string                `json:"treatment_date" validate:"required"`
	Notes                 string                `json:"notes,omitempty"`
	InventoryItemsUsed    []ConsumedItemRequest `json:"inventory_items_used,omitempty" validate:"dive"`
}

type UpdateTreatmentRecordRequest struct {
	TreatmentDate string `json:"treatment_date" validate:"required"`
	Notes         string `json:"notes,omitempty"`
}

type ConsumedItemResponse struct {
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	Quantity        int             `json:"quantity"`
	Cost            decimal.Decimal `json:"cost"`
}

type TreatmentRecordResponse struct {
	ID                    uuid.UUID              `json:"id"`
	PatientID             uuid.UUID              `json:"patient_id"`
	DentistID             uuid.UUID              `json:"dentist_id"`
	TreatmentDefinitionID uuid.UUID              `json:"treatment_definition_id"`
	TreatmentDate         string                 `json:"treatment_date"`
	Notes                 string                 `json:"notes,omitempty"`
	InventoryItemsUsed    []ConsumedItemResponse `json:"inventory_items_used,omitempty"`
	TotalTreatmentCost    decimal.Decimal        `json:"total_treatment_cost"`
	DoctorShare           decimal.Decimal        `json:"doctor_share"`
	ClinicShare           decimal.Decimal        `json:"clinic_share"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

type TreatmentRecordListResponse struct {
	Records []TreatmentRecordResponse `json:"records"`
	Total   int                       `json:"total"`
}
