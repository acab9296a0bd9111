package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of ways a patient settles charges.
// Discount is recorded as a payment so it reduces the outstanding balance.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodOther        PaymentMethod = "Other"
	PaymentMethodDiscount     PaymentMethod = "Discount"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodBankTransfer,
		PaymentMethodOther, PaymentMethodDiscount:
		return true
	}
	return false
}

// Payment represents money received from a patient against their balance
type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientID uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	Date      time.Time       `gorm:"type:date;not null;index" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Method    PaymentMethod   `gorm:"type:varchar(20);not null" json:"method"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
