package dto

import (
	"github.com/dralafandy/CuraSoft/internal/service"

	"github.com/shopspring/decimal"
)

// Report ranges arrive as ISO calendar dates, inclusive, local time.
type ReportRangeRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

type FinancialSummaryResponse struct {
	StartDate          string                  `json:"start_date"`
	EndDate            string                  `json:"end_date"`
	Rollup             service.PeriodRollup    `json:"rollup"`
	ExpensesByCategory []service.AmountByLabel `json:"expenses_by_category"`
	IncomeByTreatment  []service.AmountByLabel `json:"income_by_treatment"`
}

type DemographicsResponse struct {
	StartDate    string               `json:"start_date"`
	EndDate      string               `json:"end_date"`
	Demographics service.Demographics `json:"demographics"`
}

type DoctorReportResponse struct {
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	Doctors   []service.DoctorSummary `json:"doctors"`
}

type DashboardResponse struct {
	TodaysAppointments int                              `json:"todays_appointments"`
	TodaysRevenue      decimal.Decimal                  `json:"todays_revenue"`
	DoctorPerformance  []service.DoctorDailyPerformance `json:"doctor_performance"`
	PendingLabCases    []LabCaseResponse                `json:"pending_lab_cases"`
	LowStockItems      []InventoryItemResponse          `json:"low_stock_items"`
}

type PatientBalanceListResponse struct {
	Balances []PatientBalanceResponse `json:"balances"`
	Total    int                      `json:"total"`
}
