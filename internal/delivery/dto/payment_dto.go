package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	PatientID uuid.UUID       `json:"patient_id" validate:"required"`
	Date      string          `json:"date" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Method    string          `json:"method" validate:"required,oneof=Cash 'Credit Card' 'Bank Transfer' Other Discount"`
	Notes     string          `json:"notes,omitempty"`
}

type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	PatientID uuid.UUID       `json:"patient_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

// PatientBalanceResponse pairs a patient with their derived balance
type PatientBalanceResponse struct {
	PatientID          uuid.UUID       `json:"patient_id"`
	PatientName        string          `json:"patient_name"`
	TotalCharges       decimal.Decimal `json:"total_charges"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}
