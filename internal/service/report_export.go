package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// BuildFinancialReportWorkbook renders the period rollup plus its expense
// and income breakdowns into an xlsx workbook for download.
func BuildFinancialReportWorkbook(start, end time.Time, rollup PeriodRollup, expensesByCategory, incomeByTreatment []AmountByLabel) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Financial Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Period")
	f.SetCellValue(sheet, "B1", fmt.Sprintf("%s - %s", start.Format("2006-01-02"), end.Format("2006-01-02")))

	f.SetCellValue(sheet, "A3", "Total Income")
	f.SetCellValue(sheet, "B3", rollup.TotalIncome.InexactFloat64())
	f.SetCellValue(sheet, "A4", "Total Expenses")
	f.SetCellValue(sheet, "B4", rollup.TotalExpenses.InexactFloat64())
	f.SetCellValue(sheet, "A5", "Doctor Shares")
	f.SetCellValue(sheet, "B5", rollup.TotalDoctorShares.InexactFloat64())
	f.SetCellValue(sheet, "A6", "Net Profit")
	f.SetCellValue(sheet, "B6", rollup.NetProfit.InexactFloat64())
	f.SetCellValue(sheet, "A7", "Net Profit After Shares")
	f.SetCellValue(sheet, "B7", rollup.NetProfitAfterShares.InexactFloat64())

	row := 9
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Expenses By Category")
	row++
	for _, e := range expensesByCategory {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.Label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Amount.InexactFloat64())
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Income By Treatment")
	row++
	for _, t := range incomeByTreatment {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), t.Label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.Amount.InexactFloat64())
		row++
	}

	return f, nil
}
