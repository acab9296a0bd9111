package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	ContactPerson string `json:"contact_person,omitempty" validate:"omitempty,max=255"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Type          string `json:"type" validate:"required,oneof='Material Supplier' 'Dental Lab'"`
}

type SupplierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SupplierListResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
	Total     int                `json:"total"`
}

type InvoiceLineItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
}

type CreateSupplierInvoiceRequest struct {
	SupplierID    uuid.UUID                `json:"supplier_id" validate:"required"`
	InvoiceNumber string                   `json:"invoice_number,omitempty" validate:"omitempty,max=100"`
	InvoiceDate   string                   `json:"invoice_date" validate:"required"`
	DueDate       string                   `json:"due_date,omitempty"`
	Amount        decimal.Decimal          `json:"amount" validate:"required"`
	Items         []InvoiceLineItemRequest `json:"items,omitempty" validate:"dive"`
}

type InvoicePaymentResponse struct {
	ExpenseID uuid.UUID       `json:"expense_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
}

type SupplierInvoiceResponse struct {
	ID                 uuid.UUID                `json:"id"`
	SupplierID         uuid.UUID                `json:"supplier_id"`
	InvoiceNumber      string                   `json:"invoice_number,omitempty"`
	InvoiceDate        string                   `json:"invoice_date"`
	DueDate            string                   `json:"due_date,omitempty"`
	Amount             decimal.Decimal          `json:"amount"`
	Status             string                   `json:"status"`
	Items              []InvoiceLineItemRequest `json:"items,omitempty"`
	Payments           []InvoicePaymentResponse `json:"payments,omitempty"`
	TotalPaid          decimal.Decimal          `json:"total_paid"`
	OutstandingBalance decimal.Decimal          `json:"outstanding_balance"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

type SupplierInvoiceListResponse struct {
	Invoices []SupplierInvoiceResponse `json:"invoices"`
	Total    int                       `json:"total"`
}
