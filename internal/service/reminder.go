package service

import (
	"sort"
	"time"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// Alert selection re-scans the full collections on every call; there is no
// cached or incremental state to invalidate.

// DueAppointmentReminders selects appointments that qualify for a reminder
// at now: reminder enabled, not yet sent, starting in the future, and inside
// the configured lead window. Nearest start time first.
func DueAppointmentReminders(now time.Time, appointments []entity.Appointment) []entity.Appointment {
	var due []entity.Appointment
	for _, a := range appointments {
		if a.ReminderDue(now) {
			due = append(due, a)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].StartTime.Before(due[j].StartTime)
	})
	return due
}

// SelectLowStockItems returns items at or below their re-order threshold
// (per-item minimum level, or the clinic default when none is set),
// lowest stock first.
func SelectLowStockItems(items []entity.InventoryItem, defaultThreshold int) []entity.InventoryItem {
	var low []entity.InventoryItem
	for _, item := range items {
		if item.LowStockAt(defaultThreshold) {
			low = append(low, item)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].CurrentStock < low[j].CurrentStock
	})
	return low
}

// SelectDueLabCases returns pending cases due within dueSoonDays of now,
// including cases already overdue, nearest due date first. Cases with a
// zero due date are skipped.
func SelectDueLabCases(now time.Time, cases []entity.LabCase, dueSoonDays int) []entity.LabCase {
	cutoff := EndOfDay(now.AddDate(0, 0, dueSoonDays))

	var due []entity.LabCase
	for _, lc := range cases {
		if !lc.IsPending() || lc.DueDate.IsZero() {
			continue
		}
		if !lc.DueDate.After(cutoff) {
			due = append(due, lc)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].DueDate.Before(due[j].DueDate)
	})
	return due
}
