package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func invoiceWithPayments(amount string, payments ...string) *SupplierInvoice {
	inv := &SupplierInvoice{Amount: decimal.RequireFromString(amount)}
	for _, p := range payments {
		inv.Payments = append(inv.Payments, InvoicePayment{
			ExpenseID: uuid.New(),
			Amount:    decimal.RequireFromString(p),
			Date:      time.Now(),
		})
	}
	return inv
}

func TestSupplierInvoice_Outstanding(t *testing.T) {
	cases := []struct {
		name     string
		invoice  *SupplierInvoice
		expected string
	}{
		{"no payments", invoiceWithPayments("500"), "500"},
		{"partial", invoiceWithPayments("500", "200"), "300"},
		{"multiple payments", invoiceWithPayments("500", "200", "150.50"), "149.5"},
		{"fully paid", invoiceWithPayments("500", "300", "200"), "0"},
	}
	for _, tc := range cases {
		if got := tc.invoice.Outstanding(); got.String() != tc.expected {
			t.Fatalf("%s: expected outstanding %s, got %s", tc.name, tc.expected, got)
		}
	}
}

func TestSupplierInvoice_DeriveStatus(t *testing.T) {
	cases := []struct {
		name     string
		invoice  *SupplierInvoice
		expected SupplierInvoiceStatus
	}{
		{"no payments", invoiceWithPayments("500"), SupplierInvoiceStatusUnpaid},
		{"partial", invoiceWithPayments("500", "100"), SupplierInvoiceStatusPartiallyPaid},
		{"exactly paid", invoiceWithPayments("500", "500"), SupplierInvoiceStatusPaid},
		{"paid across payments", invoiceWithPayments("500", "250", "250"), SupplierInvoiceStatusPaid},
	}
	for _, tc := range cases {
		if got := tc.invoice.DeriveStatus(); got != tc.expected {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.expected, got)
		}
	}
}
