package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies clinic-side spend
type ExpenseCategory string

const (
	ExpenseCategoryRent      ExpenseCategory = "RENT"
	ExpenseCategorySalaries  ExpenseCategory = "SALARIES"
	ExpenseCategoryUtilities ExpenseCategory = "UTILITIES"
	ExpenseCategoryLabFees   ExpenseCategory = "LAB_FEES"
	ExpenseCategorySupplies  ExpenseCategory = "SUPPLIES"
	ExpenseCategoryMarketing ExpenseCategory = "MARKETING"
	ExpenseCategoryMisc      ExpenseCategory = "MISC"
)

func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryRent, ExpenseCategorySalaries, ExpenseCategoryUtilities,
		ExpenseCategoryLabFees, ExpenseCategorySupplies, ExpenseCategoryMarketing,
		ExpenseCategoryMisc:
		return true
	}
	return false
}

// Expense represents clinic-side spend. When linked to a supplier invoice,
// recording the expense also applies a payment to that invoice (handled as
// one transaction at the usecase layer).
type Expense struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date              time.Time       `gorm:"type:date;not null;index" json:"date"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	Amount            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category          ExpenseCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	SupplierID        *uuid.UUID      `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	SupplierInvoiceID *uuid.UUID      `gorm:"type:uuid;index" json:"supplier_invoice_id,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
