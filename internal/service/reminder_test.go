package service

import (
	"testing"
	"time"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

func TestDueAppointmentReminders(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	soon := entity.Appointment{StartTime: now.Add(30 * time.Minute), ReminderTime: entity.ReminderOneHourBefore}
	later := entity.Appointment{StartTime: now.Add(90 * time.Minute), ReminderTime: entity.ReminderTwoHoursBefore}
	appointments := []entity.Appointment{
		later,
		soon,
		// too far out for its window
		{StartTime: now.Add(5 * time.Hour), ReminderTime: entity.ReminderOneHourBefore},
		// already sent
		{StartTime: now.Add(30 * time.Minute), ReminderTime: entity.ReminderOneHourBefore, ReminderSent: true},
		// no reminder configured
		{StartTime: now.Add(30 * time.Minute), ReminderTime: entity.ReminderNone},
	}

	due := DueAppointmentReminders(now, appointments)
	if len(due) != 2 {
		t.Fatalf("expected 2 due reminders, got %d", len(due))
	}
	// nearest start first
	if !due[0].StartTime.Equal(soon.StartTime) {
		t.Fatalf("expected nearest appointment first, got %v", due[0].StartTime)
	}
	if !due[1].StartTime.Equal(later.StartTime) {
		t.Fatalf("expected later appointment second, got %v", due[1].StartTime)
	}
}

func TestSelectLowStockItems(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "Gloves", CurrentStock: 15},
		{Name: "Composite", CurrentStock: 5},
		{Name: "Anesthetic", CurrentStock: 10},
		// own minimum overrides the default
		{Name: "Burs", CurrentStock: 12, MinStockLevel: 20},
		{Name: "Masks", CurrentStock: 30, MinStockLevel: 25},
	}

	low := SelectLowStockItems(items, 10)
	if len(low) != 3 {
		t.Fatalf("expected 3 low stock items, got %d", len(low))
	}
	// lowest stock first
	if low[0].Name != "Composite" || low[1].Name != "Anesthetic" || low[2].Name != "Burs" {
		t.Fatalf("unexpected order: %s, %s, %s", low[0].Name, low[1].Name, low[2].Name)
	}
}

func TestSelectDueLabCases(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	dueDate := func(d int) time.Time {
		return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []entity.LabCase{
		{CaseType: "Crown", Status: entity.LabCaseStatusSentToLab, DueDate: dueDate(12)},
		// overdue cases still alert
		{CaseType: "Bridge", Status: entity.LabCaseStatusSentToLab, DueDate: dueDate(8)},
		// beyond the look-ahead window
		{CaseType: "Denture", Status: entity.LabCaseStatusSentToLab, DueDate: dueDate(20)},
		// terminal states never alert
		{CaseType: "Veneer", Status: entity.LabCaseStatusFittedToPatient, DueDate: dueDate(11)},
		{CaseType: "Inlay", Status: entity.LabCaseStatusCancelled, DueDate: dueDate(11)},
	}

	due := SelectDueLabCases(now, cases, 3)
	if len(due) != 2 {
		t.Fatalf("expected 2 due cases, got %d", len(due))
	}
	// nearest due date first, overdue ahead of upcoming
	if due[0].CaseType != "Bridge" || due[1].CaseType != "Crown" {
		t.Fatalf("unexpected order: %s, %s", due[0].CaseType, due[1].CaseType)
	}
}
