package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PatientID    uuid.UUID `json:"patient_id" validate:"required"`
	DentistID    uuid.UUID `json:"dentist_id" validate:"required"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	Reason       string    `json:"reason,omitempty"`
	ReminderTime string    `json:"reminder_time" validate:"required,oneof=none 1_hour_before 2_hours_before 1_day_before"`
}

type UpdateAppointmentRequest struct {
	PatientID    uuid.UUID `json:"patient_id" validate:"required"`
	DentistID    uuid.UUID `json:"dentist_id" validate:"required"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	Reason       string    `json:"reason,omitempty"`
	ReminderTime string    `json:"reminder_time" validate:"required,oneof=none 1_hour_before 2_hours_before 1_day_before"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=SCHEDULED CONFIRMED COMPLETED CANCELLED"`
}

type AppointmentResponse struct {
	ID           uuid.UUID `json:"id"`
	PatientID    uuid.UUID `json:"patient_id"`
	DentistID    uuid.UUID `json:"dentist_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Reason       string    `json:"reason,omitempty"`
	Status       string    `json:"status"`
	ReminderTime string    `json:"reminder_time"`
	ReminderSent bool      `json:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
