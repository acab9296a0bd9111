package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LabCaseStatus tracks a case through the dental lab workflow
type LabCaseStatus string

const (
	LabCaseStatusDraft           LabCaseStatus = "DRAFT"
	LabCaseStatusSentToLab       LabCaseStatus = "SENT_TO_LAB"
	LabCaseStatusReceivedFromLab LabCaseStatus = "RECEIVED_FROM_LAB"
	LabCaseStatusFittedToPatient LabCaseStatus = "FITTED_TO_PATIENT"
	LabCaseStatusCancelled       LabCaseStatus = "CANCELLED"
)

func (s LabCaseStatus) IsValid() bool {
	switch s {
	case LabCaseStatusDraft, LabCaseStatusSentToLab, LabCaseStatusReceivedFromLab,
		LabCaseStatusFittedToPatient, LabCaseStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the case has left the pending pipeline
func (s LabCaseStatus) IsTerminal() bool {
	return s == LabCaseStatusFittedToPatient || s == LabCaseStatusCancelled
}

// CanTransitionTo checks the DRAFT -> SENT_TO_LAB -> RECEIVED_FROM_LAB ->
// FITTED_TO_PATIENT chain, with CANCELLED reachable from any non-terminal state.
func (s LabCaseStatus) CanTransitionTo(next LabCaseStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case LabCaseStatusCancelled:
		return true
	case LabCaseStatusSentToLab:
		return s == LabCaseStatusDraft
	case LabCaseStatusReceivedFromLab:
		return s == LabCaseStatusSentToLab
	case LabCaseStatusFittedToPatient:
		return s == LabCaseStatusReceivedFromLab
	}
	return false
}

// LabCase represents prosthetic work sent out to a dental lab
type LabCase struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	LabID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"lab_id"`
	CaseType   string          `gorm:"type:varchar(255)" json:"case_type,omitempty"`
	SentDate   *time.Time      `gorm:"type:date" json:"sent_date,omitempty"`
	DueDate    time.Time       `gorm:"type:date;not null;index" json:"due_date"`
	ReturnDate *time.Time      `gorm:"type:date" json:"return_date,omitempty"`
	Status     LabCaseStatus   `gorm:"type:varchar(20);not null;default:'DRAFT';index" json:"status"`
	LabCost    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"lab_cost"`
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LabCase) TableName() string {
	return "lab_cases"
}

// IsPending reports whether the case still needs attention
func (lc *LabCase) IsPending() bool {
	return !lc.Status.IsTerminal()
}
