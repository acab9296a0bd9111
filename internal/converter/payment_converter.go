package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	"github.com/dralafandy/CuraSoft/internal/service"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:        payment.ID,
		PatientID: payment.PatientID,
		Date:      formatDate(payment.Date),
		Amount:    payment.Amount,
		Method:    string(payment.Method),
		Notes:     payment.Notes,
		CreatedAt: payment.CreatedAt,
		UpdatedAt: payment.UpdatedAt,
	}
}

// PaymentsToResponses converts a slice of Payment entities to slice of PaymentResponse DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}

// PatientBalanceToResponse pairs a patient with their derived balance
func PatientBalanceToResponse(patient *entity.Patient, balance service.PatientBalance) dto.PatientBalanceResponse {
	return dto.PatientBalanceResponse{
		PatientID:          patient.ID,
		PatientName:        patient.Name,
		TotalCharges:       balance.TotalCharges,
		TotalPaid:          balance.TotalPaid,
		OutstandingBalance: balance.OutstandingBalance,
	}
}
