package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transition
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransitionTo checks the SCHEDULED -> CONFIRMED -> COMPLETED chain,
// with CANCELLED reachable from any non-terminal state.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case AppointmentStatusCancelled:
		return true
	case AppointmentStatusConfirmed:
		return s == AppointmentStatusScheduled
	case AppointmentStatusCompleted:
		return s == AppointmentStatusConfirmed
	}
	return false
}

// ReminderTime is the patient-facing reminder lead-time choice
type ReminderTime string

const (
	ReminderNone           ReminderTime = "none"
	ReminderOneHourBefore  ReminderTime = "1_hour_before"
	ReminderTwoHoursBefore ReminderTime = "2_hours_before"
	ReminderOneDayBefore   ReminderTime = "1_day_before"
)

func (r ReminderTime) IsValid() bool {
	switch r {
	case ReminderNone, ReminderOneHourBefore, ReminderTwoHoursBefore, ReminderOneDayBefore:
		return true
	}
	return false
}

// Threshold maps the reminder choice to its lead-time window.
// The second return is false for ReminderNone.
func (r ReminderTime) Threshold() (time.Duration, bool) {
	switch r {
	case ReminderOneHourBefore:
		return time.Hour, true
	case ReminderTwoHoursBefore:
		return 2 * time.Hour, true
	case ReminderOneDayBefore:
		return 24 * time.Hour, true
	}
	return 0, false
}

// Appointment represents a scheduled patient visit
type Appointment struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DentistID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"dentist_id"`
	StartTime    time.Time         `gorm:"not null;index" json:"start_time"`
	EndTime      time.Time         `gorm:"not null" json:"end_time"`
	Reason       string            `gorm:"type:text" json:"reason,omitempty"`
	Status       AppointmentStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	ReminderTime ReminderTime      `gorm:"type:varchar(20);not null;default:'none'" json:"reminder_time"`
	ReminderSent bool              `gorm:"not null;default:false" json:"reminder_sent"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// ReminderDue reports whether the appointment qualifies for a reminder at now:
// reminder enabled, not yet sent, start still ahead, and inside the lead window.
func (a *Appointment) ReminderDue(now time.Time) bool {
	if a.ReminderSent {
		return false
	}
	threshold, ok := a.ReminderTime.Threshold()
	if !ok {
		return false
	}
	if a.StartTime.Before(now) {
		return false
	}
	return a.StartTime.Sub(now) <= threshold
}
