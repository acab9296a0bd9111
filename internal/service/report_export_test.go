package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBuildFinancialReportWorkbook(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	rollup := PeriodRollup{
		TotalIncome:          decimal.RequireFromString("500"),
		TotalExpenses:        decimal.RequireFromString("50"),
		TotalDoctorShares:    decimal.RequireFromString("200"),
		NetProfit:            decimal.RequireFromString("450"),
		NetProfitAfterShares: decimal.RequireFromString("250"),
	}
	expenses := []AmountByLabel{{Label: "RENT", Amount: decimal.RequireFromString("50")}}
	income := []AmountByLabel{{Label: "Cleaning", Amount: decimal.RequireFromString("500")}}

	f, err := BuildFinancialReportWorkbook(start, end, rollup, expenses, income)
	if err != nil {
		t.Fatalf("BuildFinancialReportWorkbook error: %v", err)
	}
	defer f.Close()

	const sheet = "Financial Summary"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		t.Fatalf("expected sheet %q to exist, index %d, err %v", sheet, idx, err)
	}

	cases := []struct {
		cell     string
		expected string
	}{
		{"B1", "2025-06-01 - 2025-06-30"},
		{"A3", "Total Income"},
		{"B3", "500"},
		{"B6", "450"},
		{"B7", "250"},
		{"A10", "RENT"},
		{"B10", "50"},
	}
	for _, tc := range cases {
		got, err := f.GetCellValue(sheet, tc.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) error: %v", tc.cell, err)
		}
		if got != tc.expected {
			t.Fatalf("cell %s: expected %q, got %q", tc.cell, tc.expected, got)
		}
	}
}
