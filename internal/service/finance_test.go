package service

import (
	"testing"
	"time"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePatientBalance(t *testing.T) {
	patientID := uuid.New()
	otherID := uuid.New()

	records := []entity.TreatmentRecord{
		{PatientID: patientID, TotalTreatmentCost: dec("300")},
		{PatientID: patientID, TotalTreatmentCost: dec("150.50")},
		{PatientID: otherID, TotalTreatmentCost: dec("999")},
	}
	payments := []entity.Payment{
		{PatientID: patientID, Amount: dec("200")},
		{PatientID: otherID, Amount: dec("50")},
	}

	balance := ComputePatientBalance(patientID, records, payments)
	if balance.TotalCharges.String() != "450.5" {
		t.Fatalf("expected charges 450.5, got %s", balance.TotalCharges)
	}
	if balance.TotalPaid.String() != "200" {
		t.Fatalf("expected paid 200, got %s", balance.TotalPaid)
	}
	if balance.OutstandingBalance.String() != "250.5" {
		t.Fatalf("expected outstanding 250.5, got %s", balance.OutstandingBalance)
	}
}

func TestComputePatientBalance_Overpaid(t *testing.T) {
	patientID := uuid.New()
	records := []entity.TreatmentRecord{{PatientID: patientID, TotalTreatmentCost: dec("100")}}
	payments := []entity.Payment{{PatientID: patientID, Amount: dec("150")}}

	balance := ComputePatientBalance(patientID, records, payments)
	if balance.OutstandingBalance.String() != "-50" {
		t.Fatalf("expected credit -50, got %s", balance.OutstandingBalance)
	}
}

func TestComputeDoctorPerformance(t *testing.T) {
	today := day(2025, 6, 10)
	drA := entity.Dentist{ID: uuid.New(), Name: "Dr. A", Color: "#ff0000"}
	drB := entity.Dentist{ID: uuid.New(), Name: "Dr. B"}
	dentists := []entity.Dentist{drA, drB}

	records := []entity.TreatmentRecord{
		{DentistID: drA.ID, TreatmentDate: today, DoctorShare: dec("75")},
		{DentistID: drB.ID, TreatmentDate: today, DoctorShare: dec("25")},
		{DentistID: drA.ID, TreatmentDate: day(2025, 6, 9), DoctorShare: dec("500")},
	}

	perf := ComputeDoctorPerformance(today, records, dentists)
	if len(perf) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(perf))
	}
	// highest earnings first
	if perf[0].Name != "Dr. A" || perf[0].Earnings.String() != "75" {
		t.Fatalf("expected Dr. A with 75 first, got %s with %s", perf[0].Name, perf[0].Earnings)
	}
	if perf[0].Percentage.String() != "75" {
		t.Fatalf("expected percentage 75, got %s", perf[0].Percentage)
	}
	if perf[1].Percentage.String() != "25" {
		t.Fatalf("expected percentage 25, got %s", perf[1].Percentage)
	}
	if perf[0].Color != "#ff0000" {
		t.Fatalf("expected color carried over, got %q", perf[0].Color)
	}
}

func TestComputeDoctorPerformance_UnknownDentist(t *testing.T) {
	today := day(2025, 6, 10)
	records := []entity.TreatmentRecord{
		{DentistID: uuid.New(), TreatmentDate: today, DoctorShare: dec("40")},
	}

	perf := ComputeDoctorPerformance(today, records, nil)
	if len(perf) != 1 {
		t.Fatalf("expected 1 row, got %d", len(perf))
	}
	if perf[0].Name != UnknownLabel {
		t.Fatalf("expected %q name, got %q", UnknownLabel, perf[0].Name)
	}
	if perf[0].Earnings.String() != "40" {
		t.Fatalf("unresolved dentist earnings must still count, got %s", perf[0].Earnings)
	}
}

func TestComputeDoctorPerformance_ZeroTotal(t *testing.T) {
	today := day(2025, 6, 10)
	dentist := entity.Dentist{ID: uuid.New(), Name: "Dr. A"}
	records := []entity.TreatmentRecord{
		{DentistID: dentist.ID, TreatmentDate: today, DoctorShare: decimal.Zero},
	}

	perf := ComputeDoctorPerformance(today, records, []entity.Dentist{dentist})
	if len(perf) != 1 {
		t.Fatalf("expected 1 row, got %d", len(perf))
	}
	if !perf[0].Percentage.IsZero() {
		t.Fatalf("expected zero percentage when day total is zero, got %s", perf[0].Percentage)
	}
}

func TestComputePeriodRollup(t *testing.T) {
	start, end := day(2025, 6, 1), day(2025, 6, 30)

	records := []entity.TreatmentRecord{
		{TreatmentDate: day(2025, 6, 5), TotalTreatmentCost: dec("200"), DoctorShare: dec("80")},
		{TreatmentDate: day(2025, 6, 30), TotalTreatmentCost: dec("300"), DoctorShare: dec("120")},
		{TreatmentDate: day(2025, 7, 1), TotalTreatmentCost: dec("1000"), DoctorShare: dec("400")},
	}
	expenses := []entity.Expense{
		{Date: day(2025, 6, 10), Amount: dec("50")},
		{Date: day(2025, 5, 31), Amount: dec("75")},
	}

	rollup := ComputePeriodRollup(start, end, records, expenses)
	if rollup.TotalIncome.String() != "500" {
		t.Fatalf("expected income 500, got %s", rollup.TotalIncome)
	}
	if rollup.TotalExpenses.String() != "50" {
		t.Fatalf("expected expenses 50, got %s", rollup.TotalExpenses)
	}
	if rollup.TotalDoctorShares.String() != "200" {
		t.Fatalf("expected doctor shares 200, got %s", rollup.TotalDoctorShares)
	}
	if rollup.NetProfit.String() != "450" {
		t.Fatalf("expected net profit 450, got %s", rollup.NetProfit)
	}
	if rollup.NetProfitAfterShares.String() != "250" {
		t.Fatalf("expected net profit after shares 250, got %s", rollup.NetProfitAfterShares)
	}
}

func TestGroupExpensesByCategory(t *testing.T) {
	start, end := day(2025, 6, 1), day(2025, 6, 30)

	expenses := []entity.Expense{
		{Date: day(2025, 6, 2), Category: entity.ExpenseCategorySupplies, Amount: dec("100")},
		{Date: day(2025, 6, 3), Category: entity.ExpenseCategorySupplies, Amount: dec("60")},
		{Date: day(2025, 6, 4), Category: entity.ExpenseCategoryRent, Amount: dec("900")},
		{Date: day(2025, 7, 4), Category: entity.ExpenseCategoryRent, Amount: dec("900")},
	}

	rows := GroupExpensesByCategory(start, end, expenses)
	if len(rows) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(rows))
	}
	if rows[0].Label != string(entity.ExpenseCategoryRent) || rows[0].Amount.String() != "900" {
		t.Fatalf("expected RENT 900 first, got %s %s", rows[0].Label, rows[0].Amount)
	}
	if rows[1].Label != string(entity.ExpenseCategorySupplies) || rows[1].Amount.String() != "160" {
		t.Fatalf("expected SUPPLIES 160, got %s %s", rows[1].Label, rows[1].Amount)
	}
}

func TestGroupIncomeByTreatment_UnresolvedDefinition(t *testing.T) {
	start, end := day(2025, 6, 1), day(2025, 6, 30)
	cleaning := entity.TreatmentDefinition{ID: uuid.New(), Name: "Cleaning"}

	records := []entity.TreatmentRecord{
		{TreatmentDate: day(2025, 6, 2), TreatmentDefinitionID: cleaning.ID, TotalTreatmentCost: dec("120")},
		{TreatmentDate: day(2025, 6, 3), TreatmentDefinitionID: uuid.New(), TotalTreatmentCost: dec("500")},
	}

	rows := GroupIncomeByTreatment(start, end, records, []entity.TreatmentDefinition{cleaning})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Label != UnknownLabel || rows[0].Amount.String() != "500" {
		t.Fatalf("expected Unknown 500 first, got %s %s", rows[0].Label, rows[0].Amount)
	}
	if rows[1].Label != "Cleaning" || rows[1].Amount.String() != "120" {
		t.Fatalf("expected Cleaning 120, got %s %s", rows[1].Label, rows[1].Amount)
	}
}

func TestComputeDemographics(t *testing.T) {
	now := day(2025, 6, 15)
	start, end := day(2025, 6, 1), day(2025, 6, 30)
	visit := day(2025, 6, 10)
	oldVisit := day(2025, 1, 5)

	patients := []entity.Patient{
		// turns 18 exactly on now: counted in 0-18
		{Gender: entity.GenderFemale, DateOfBirth: day(2007, 6, 15), LastVisit: &visit},
		// turns 19 the day after now: still 18, counted in 0-18
		{Gender: entity.GenderMale, DateOfBirth: day(2006, 6, 16), LastVisit: &visit},
		// 19 years old: counted in 19-35
		{Gender: entity.GenderMale, DateOfBirth: day(2006, 6, 14), LastVisit: &visit},
		{Gender: entity.GenderFemale, DateOfBirth: day(1980, 3, 1), LastVisit: &visit},
		{Gender: entity.GenderOther, DateOfBirth: day(1950, 1, 1), LastVisit: &visit},
		// outside range or never visited: excluded
		{Gender: entity.GenderMale, DateOfBirth: day(1990, 1, 1), LastVisit: &oldVisit},
		{Gender: entity.GenderMale, DateOfBirth: day(1990, 1, 1)},
	}

	demo := ComputeDemographics(start, end, now, patients)

	genderCounts := make(map[string]int)
	for _, row := range demo.Gender {
		genderCounts[row.Label] = row.Count
	}
	if genderCounts["Female"] != 2 || genderCounts["Male"] != 2 || genderCounts["Other"] != 1 {
		t.Fatalf("unexpected gender counts: %v", genderCounts)
	}

	ageCounts := make(map[string]int)
	for _, row := range demo.AgeBands {
		ageCounts[row.Label] = row.Count
	}
	if ageCounts["0-18"] != 2 {
		t.Fatalf("expected 2 in 0-18, got %d", ageCounts["0-18"])
	}
	if ageCounts["19-35"] != 1 {
		t.Fatalf("expected 1 in 19-35, got %d", ageCounts["19-35"])
	}
	if ageCounts["36-55"] != 1 {
		t.Fatalf("expected 1 in 36-55, got %d", ageCounts["36-55"])
	}
	if ageCounts["56+"] != 1 {
		t.Fatalf("expected 1 in 56+, got %d", ageCounts["56+"])
	}
}

func TestSummarizeDoctors(t *testing.T) {
	start, end := day(2025, 6, 1), day(2025, 6, 30)
	drA := entity.Dentist{ID: uuid.New(), Name: "Dr. A"}
	drB := entity.Dentist{ID: uuid.New(), Name: "Dr. B"}
	patientID := uuid.New()

	records := []entity.TreatmentRecord{
		{DentistID: drA.ID, PatientID: patientID, TreatmentDate: day(2025, 6, 5), TotalTreatmentCost: dec("400"), DoctorShare: dec("160")},
		{DentistID: drA.ID, PatientID: patientID, TreatmentDate: day(2025, 6, 6), TotalTreatmentCost: dec("100"), DoctorShare: dec("40")},
	}
	payments := []entity.Payment{
		{PatientID: patientID, Date: day(2025, 6, 7), Amount: dec("250")},
		{PatientID: uuid.New(), Date: day(2025, 6, 7), Amount: dec("999")},
	}

	summaries := SummarizeDoctors(start, end, records, payments, []entity.Dentist{drA, drB})
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Name != "Dr. A" {
		t.Fatalf("expected Dr. A first by revenue, got %s", summaries[0].Name)
	}
	if summaries[0].TreatmentCount != 2 {
		t.Fatalf("expected 2 treatments, got %d", summaries[0].TreatmentCount)
	}
	if summaries[0].TotalRevenue.String() != "500" {
		t.Fatalf("expected revenue 500, got %s", summaries[0].TotalRevenue)
	}
	if summaries[0].TotalEarnings.String() != "200" {
		t.Fatalf("expected earnings 200, got %s", summaries[0].TotalEarnings)
	}
	if summaries[0].PaymentsReceived.String() != "250" {
		t.Fatalf("expected payments 250, got %s", summaries[0].PaymentsReceived)
	}
	if summaries[1].TreatmentCount != 0 || !summaries[1].TotalRevenue.IsZero() {
		t.Fatalf("expected empty summary for Dr. B, got %+v", summaries[1])
	}
}
