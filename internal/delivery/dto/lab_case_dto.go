package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateLabCaseRequest struct {
	PatientID uuid.UUID       `json:"patient_id" validate:"required"`
	LabID     uuid.UUID       `json:"lab_id" validate:"required"`
	CaseType  string          `json:"case_type,omitempty" validate:"omitempty,max=255"`
	SentDate  string          `json:"sent_date,omitempty"`
	DueDate   string          `json:"due_date" validate:"required"`
	LabCost   decimal.Decimal `json:"lab_cost"`
	Notes     string          `json:"notes,omitempty"`
}

type UpdateLabCaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SENT_TO_LAB RECEIVED_FROM_LAB FITTED_TO_PATIENT CANCELLED"`
}

type LabCaseResponse struct {
	ID         uuid.UUID       `json:"id"`
	PatientID  uuid.UUID       `json:"patient_id"`
	LabID      uuid.UUID       `json:"lab_id"`
	CaseType   string          `json:"case_type,omitempty"`
	SentDate   string          `json:"sent_date,omitempty"`
	DueDate    string          `json:"due_date"`
	ReturnDate string          `json:"return_date,omitempty"`
	Status     string          `json:"status"`
	LabCost    decimal.Decimal `json:"lab_cost"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type LabCaseListResponse struct {
	Cases []LabCaseResponse `json:"cases"`
	Total int               `json:"total"`
}
