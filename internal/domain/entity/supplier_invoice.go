package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierInvoiceStatus is derived from the applied payments and refreshed
// whenever a payment is applied; it is never set directly by callers.
type SupplierInvoiceStatus string

const (
	SupplierInvoiceStatusUnpaid        SupplierInvoiceStatus = "UNPAID"
	SupplierInvoiceStatusPartiallyPaid SupplierInvoiceStatus = "PARTIALLY_PAID"
	SupplierInvoiceStatusPaid          SupplierInvoiceStatus = "PAID"
)

// InvoicePayment links an applied payment back to the expense that funded it
type InvoicePayment struct {
	ExpenseID uuid.UUID       `json:"expense_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
}

// InvoicePayments is stored as a jsonb column on the invoice
type InvoicePayments []InvoicePayment

// Value returns json value, implement driver.Valuer interface
func (p InvoicePayments) Value() (driver.Value, error) {
	if len(p) == 0 {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan scans a jsonb value, implements sql.Scanner interface
func (p *InvoicePayments) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	result := InvoicePayments{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*p = result
	return nil
}

// InvoiceLineItem is one billed line on a supplier invoice
type InvoiceLineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceLineItems is stored as a jsonb column on the invoice
type InvoiceLineItems []InvoiceLineItem

// Value returns json value, implement driver.Valuer interface
func (i InvoiceLineItems) Value() (driver.Value, error) {
	if len(i) == 0 {
		return nil, nil
	}
	return json.Marshal(i)
}

// Scan scans a jsonb value, implements sql.Scanner interface
func (i *InvoiceLineItems) Scan(value interface{}) error {
	if value == nil {
		*i = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	result := InvoiceLineItems{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*i = result
	return nil
}

// SupplierInvoice represents a bill received from a supplier or dental lab
type SupplierInvoice struct {
	ID            uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	SupplierID    uuid.UUID             `gorm:"type:uuid;not null;index" json:"supplier_id"`
	InvoiceNumber string                `gorm:"type:varchar(100)" json:"invoice_number,omitempty"`
	InvoiceDate   time.Time             `gorm:"type:date;not null" json:"invoice_date"`
	DueDate       *time.Time            `gorm:"type:date" json:"due_date,omitempty"`
	Amount        decimal.Decimal       `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status        SupplierInvoiceStatus `gorm:"type:varchar(20);not null;default:'UNPAID';index" json:"status"`
	Items         InvoiceLineItems      `gorm:"type:jsonb" json:"items,omitempty"`
	Payments      InvoicePayments       `gorm:"type:jsonb" json:"payments,omitempty"`
	CreatedAt     time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SupplierInvoice) TableName() string {
	return "supplier_invoices"
}

// TotalPaid sums the applied payments
func (i *SupplierInvoice) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range i.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Outstanding is the billed amount minus applied payments
func (i *SupplierInvoice) Outstanding() decimal.Decimal {
	return i.Amount.Sub(i.TotalPaid())
}

// DeriveStatus recomputes the status from the applied payments
func (i *SupplierInvoice) DeriveStatus() SupplierInvoiceStatus {
	paid := i.TotalPaid()
	switch {
	case paid.GreaterThanOrEqual(i.Amount):
		return SupplierInvoiceStatusPaid
	case paid.IsPositive():
		return SupplierInvoiceStatusPartiallyPaid
	default:
		return SupplierInvoiceStatusUnpaid
	}
}
