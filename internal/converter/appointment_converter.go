package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:           appointment.ID,
		PatientID:    appointment.PatientID,
		DentistID:    appointment.DentistID,
		StartTime:    appointment.StartTime,
		EndTime:      appointment.EndTime,
		Reason:       appointment.Reason,
		Status:       string(appointment.Status),
		ReminderTime: string(appointment.ReminderTime),
		ReminderSent: appointment.ReminderSent,
		CreatedAt:    appointment.CreatedAt,
		UpdatedAt:    appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
