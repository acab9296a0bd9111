package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// ExpenseToResponse converts an Expense entity to ExpenseResponse DTO
func ExpenseToResponse(expense *entity.Expense) *dto.ExpenseResponse {
	if expense == nil {
		return nil
	}

	return &dto.ExpenseResponse{
		ID:                expense.ID,
		Date:              formatDate(expense.Date),
		Description:       expense.Description,
		Amount:            expense.Amount,
		Category:          string(expense.Category),
		SupplierID:        expense.SupplierID,
		SupplierInvoiceID: expense.SupplierInvoiceID,
		CreatedAt:         expense.CreatedAt,
		UpdatedAt:         expense.UpdatedAt,
	}
}

// ExpensesToResponses converts a slice of Expense entities to slice of ExpenseResponse DTOs
func ExpensesToResponses(expenses []entity.Expense) []dto.ExpenseResponse {
	responses := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = *ExpenseToResponse(&expenses[i])
	}
	return responses
}
