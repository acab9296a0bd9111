package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateExpenseRequest struct {
	Date              string          `json:"date" validate:"required"`
	Description       string          `json:"description,omitempty"`
	Amount            decimal.Decimal `json:"amount" validate:"required"`
	Category          string          `json:"category" validate:"required,oneof=RENT SALARIES UTILITIES LAB_FEES SUPPLIES MARKETING MISC"`
	SupplierID        *uuid.UUID      `json:"supplier_id,omitempty"`
	SupplierInvoiceID *uuid.UUID      `json:"supplier_invoice_id,omitempty"`
}

type ExpenseResponse struct {
	ID                uuid.UUID       `json:"id"`
	Date              string          `json:"date"`
	Description       string          `json:"description,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Category          string          `json:"category"`
	SupplierID        *uuid.UUID      `json:"supplier_id,omitempty"`
	SupplierInvoiceID *uuid.UUID      `json:"supplier_invoice_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}
