package service

import (
	"sort"
	"time"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Label used when a foreign key does not resolve. Lookups are never enforced
// at the data layer, so every aggregation handles a missing reference by
// labelling it and still counting its amounts.
const UnknownLabel = "Unknown"

// PatientBalance is the derived financial position of one patient.
// Positive outstanding means the patient owes money, negative means the
// clinic holds a credit, zero means paid in full.
type PatientBalance struct {
	TotalCharges       decimal.Decimal `json:"total_charges"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// DoctorDailyPerformance is one dentist's earnings for a single day along
// with their share of the day's total earnings.
type DoctorDailyPerformance struct {
	DentistID  uuid.UUID       `json:"dentist_id"`
	Name       string          `json:"name"`
	Color      string          `json:"color,omitempty"`
	Earnings   decimal.Decimal `json:"earnings"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DoctorSummary aggregates one dentist's activity over a period
type DoctorSummary struct {
	DentistID        uuid.UUID       `json:"dentist_id"`
	Name             string          `json:"name"`
	TreatmentCount   int             `json:"treatment_count"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	PaymentsReceived decimal.Decimal `json:"payments_received"`
}

// InvoiceBalance is the derived payment position of one supplier invoice
type InvoiceBalance struct {
	TotalBilled        decimal.Decimal `json:"total_billed"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// PeriodRollup is the income/expense/profit summary for a date range.
// NetProfit is income minus expenses; NetProfitAfterShares additionally
// subtracts doctor shares, since those are a real payout. Both are exposed
// so report views never silently substitute one for the other.
type PeriodRollup struct {
	TotalIncome          decimal.Decimal `json:"total_income"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	TotalDoctorShares    decimal.Decimal `json:"total_doctor_shares"`
	NetProfit            decimal.Decimal `json:"net_profit"`
	NetProfitAfterShares decimal.Decimal `json:"net_profit_after_shares"`
}

// AmountByLabel is one row of a grouped money breakdown
type AmountByLabel struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CountByLabel is one row of a grouped count breakdown
type CountByLabel struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Demographics buckets patients seen in a period by gender and age band
type Demographics struct {
	Gender   []CountByLabel `json:"gender"`
	AgeBands []CountByLabel `json:"age_bands"`
}

// StartOfDay normalizes t to 00:00:00 of its calendar day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay normalizes t to the last nanosecond of its calendar day
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// inRange reports whether t falls inside [start, end]. Zero times are
// treated as malformed and excluded rather than aborting the aggregation.
func inRange(t, start, end time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(start) && !t.After(end)
}

// ComputePatientBalance derives a patient's charges, payments and balance
// from the full record and payment collections.
func ComputePatientBalance(patientID uuid.UUID, records []entity.TreatmentRecord, payments []entity.Payment) PatientBalance {
	charges := decimal.Zero
	for _, r := range records {
		if r.PatientID == patientID {
			charges = charges.Add(r.TotalTreatmentCost)
		}
	}
	paid := decimal.Zero
	for _, p := range payments {
		if p.PatientID == patientID {
			paid = paid.Add(p.Amount)
		}
	}
	return PatientBalance{
		TotalCharges:       charges,
		TotalPaid:          paid,
		OutstandingBalance: charges.Sub(paid),
	}
}

// ComputeDoctorPerformance buckets the given day's treatment records per
// dentist and computes each dentist's earnings and share of the day's total.
// Percentage is zero when the day's total is zero. Records whose dentist no
// longer resolves are grouped under the unknown label and still counted.
func ComputeDoctorPerformance(day time.Time, records []entity.TreatmentRecord, dentists []entity.Dentist) []DoctorDailyPerformance {
	start, end := StartOfDay(day), EndOfDay(day)

	byDentist := make(map[uuid.UUID]*DoctorDailyPerformance)
	var order []uuid.UUID
	total := decimal.Zero

	for _, r := range records {
		if !inRange(r.TreatmentDate, start, end) {
			continue
		}
		perf, ok := byDentist[r.DentistID]
		if !ok {
			perf = &DoctorDailyPerformance{DentistID: r.DentistID, Name: UnknownLabel, Earnings: decimal.Zero}
			if d := findDentist(dentists, r.DentistID); d != nil {
				perf.Name = d.Name
				perf.Color = d.Color
			}
			byDentist[r.DentistID] = perf
			order = append(order, r.DentistID)
		}
		perf.Earnings = perf.Earnings.Add(r.DoctorShare)
		total = total.Add(r.DoctorShare)
	}

	result := make([]DoctorDailyPerformance, 0, len(order))
	hundred := decimal.NewFromInt(100)
	for _, id := range order {
		perf := byDentist[id]
		perf.Percentage = decimal.Zero
		if total.IsPositive() {
			perf.Percentage = perf.Earnings.Div(total).Mul(hundred).Round(2)
		}
		result = append(result, *perf)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Earnings.GreaterThan(result[j].Earnings)
	})
	return result
}

// SummarizeDoctors aggregates revenue, earnings and received payments per
// dentist over [start, end]. Payments are attributed to a dentist when the
// paying patient had a treatment with that dentist inside the range.
func SummarizeDoctors(start, end time.Time, records []entity.TreatmentRecord, payments []entity.Payment, dentists []entity.Dentist) []DoctorSummary {
	start, end = StartOfDay(start), EndOfDay(end)

	summaries := make([]DoctorSummary, 0, len(dentists))
	for _, d := range dentists {
		summary := DoctorSummary{
			DentistID:        d.ID,
			Name:             d.Name,
			TotalRevenue:     decimal.Zero,
			TotalEarnings:    decimal.Zero,
			PaymentsReceived: decimal.Zero,
		}
		treatedPatients := make(map[uuid.UUID]struct{})
		for _, r := range records {
			if r.DentistID != d.ID || !inRange(r.TreatmentDate, start, end) {
				continue
			}
			summary.TreatmentCount++
			summary.TotalRevenue = summary.TotalRevenue.Add(r.TotalTreatmentCost)
			summary.TotalEarnings = summary.TotalEarnings.Add(r.DoctorShare)
			treatedPatients[r.PatientID] = struct{}{}
		}
		for _, p := range payments {
			if _, ok := treatedPatients[p.PatientID]; !ok {
				continue
			}
			if inRange(p.Date, start, end) {
				summary.PaymentsReceived = summary.PaymentsReceived.Add(p.Amount)
			}
		}
		summaries = append(summaries, summary)
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalRevenue.GreaterThan(summaries[j].TotalRevenue)
	})
	return summaries
}

// ComputeInvoiceBalance derives the payment position of a supplier invoice
func ComputeInvoiceBalance(invoice *entity.SupplierInvoice) InvoiceBalance {
	paid := invoice.TotalPaid()
	return InvoiceBalance{
		TotalBilled:        invoice.Amount,
		TotalPaid:          paid,
		OutstandingBalance: invoice.Amount.Sub(paid),
	}
}

// ComputePeriodRollup sums treatment income, expenses and doctor shares over
// [startOfDay(start), endOfDay(end)] inclusive.
func ComputePeriodRollup(start, end time.Time, records []entity.TreatmentRecord, expenses []entity.Expense) PeriodRollup {
	start, end = StartOfDay(start), EndOfDay(end)

	income, shares := decimal.Zero, decimal.Zero
	for _, r := range records {
		if inRange(r.TreatmentDate, start, end) {
			income = income.Add(r.TotalTreatmentCost)
			shares = shares.Add(r.DoctorShare)
		}
	}
	spent := decimal.Zero
	for _, e := range expenses {
		if inRange(e.Date, start, end) {
			spent = spent.Add(e.Amount)
		}
	}
	net := income.Sub(spent)
	return PeriodRollup{
		TotalIncome:          income,
		TotalExpenses:        spent,
		TotalDoctorShares:    shares,
		NetProfit:            net,
		NetProfitAfterShares: net.Sub(shares),
	}
}

// GroupExpensesByCategory sums expenses in range keyed by category,
// descending by amount.
func GroupExpensesByCategory(start, end time.Time, expenses []entity.Expense) []AmountByLabel {
	start, end = StartOfDay(start), EndOfDay(end)

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !inRange(e.Date, start, end) {
			continue
		}
		label := string(e.Category)
		if label == "" {
			label = UnknownLabel
		}
		totals[label] = totals[label].Add(e.Amount)
	}
	return sortedAmounts(totals)
}

// GroupIncomeByTreatment sums treatment income in range keyed by the
// resolved definition name, descending by amount. Records whose definition
// no longer resolves still contribute under the unknown label.
func GroupIncomeByTreatment(start, end time.Time, records []entity.TreatmentRecord, definitions []entity.TreatmentDefinition) []AmountByLabel {
	start, end = StartOfDay(start), EndOfDay(end)

	names := make(map[uuid.UUID]string, len(definitions))
	for _, d := range definitions {
		names[d.ID] = d.Name
	}

	totals := make(map[string]decimal.Decimal)
	for _, r := range records {
		if !inRange(r.TreatmentDate, start, end) {
			continue
		}
		label, ok := names[r.TreatmentDefinitionID]
		if !ok || label == "" {
			label = UnknownLabel
		}
		totals[label] = totals[label].Add(r.TotalTreatmentCost)
	}
	return sortedAmounts(totals)
}

// Age band labels, reported in this fixed order
var ageBandLabels = []string{"0-18", "19-35", "36-55", "56+"}

// ComputeDemographics buckets patients whose last visit falls in
// [start, end] by gender and by age band at now.
func ComputeDemographics(start, end, now time.Time, patients []entity.Patient) Demographics {
	start, end = StartOfDay(start), EndOfDay(end)

	genderCounts := make(map[string]int)
	ageCounts := make(map[string]int, len(ageBandLabels))
	for _, label := range ageBandLabels {
		ageCounts[label] = 0
	}

	for _, p := range patients {
		if p.LastVisit == nil || !inRange(*p.LastVisit, start, end) {
			continue
		}
		gender := string(p.Gender)
		if gender == "" {
			gender = UnknownLabel
		}
		genderCounts[gender]++

		switch age := p.AgeAt(now); {
		case age <= 18:
			ageCounts["0-18"]++
		case age <= 35:
			ageCounts["19-35"]++
		case age <= 55:
			ageCounts["36-55"]++
		default:
			ageCounts["56+"]++
		}
	}

	genders := make([]CountByLabel, 0, len(genderCounts))
	for label, count := range genderCounts {
		genders = append(genders, CountByLabel{Label: label, Count: count})
	}
	sort.Slice(genders, func(i, j int) bool { return genders[i].Label < genders[j].Label })

	ages := make([]CountByLabel, 0, len(ageBandLabels))
	for _, label := range ageBandLabels {
		ages = append(ages, CountByLabel{Label: label, Count: ageCounts[label]})
	}

	return Demographics{Gender: genders, AgeBands: ages}
}

func findDentist(dentists []entity.Dentist, id uuid.UUID) *entity.Dentist {
	for i := range dentists {
		if dentists[i].ID == id {
			return &dentists[i]
		}
	}
	return nil
}

func sortedAmounts(totals map[string]decimal.Decimal) []AmountByLabel {
	rows := make([]AmountByLabel, 0, len(totals))
	for label, amount := range totals {
		rows = append(rows, AmountByLabel{Label: label, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}
