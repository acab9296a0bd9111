package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// SupplierToResponse converts a Supplier entity to SupplierResponse DTO
func SupplierToResponse(supplier *entity.Supplier) *dto.SupplierResponse {
	if supplier == nil {
		return nil
	}

	return &dto.SupplierResponse{
		ID:            supplier.ID,
		Name:          supplier.Name,
		ContactPerson: supplier.ContactPerson,
		Phone:         supplier.Phone,
		Email:         supplier.Email,
		Type:          string(supplier.Type),
		CreatedAt:     supplier.CreatedAt,
		UpdatedAt:     supplier.UpdatedAt,
	}
}

// SuppliersToResponses converts a slice of Supplier entities to slice of SupplierResponse DTOs
func SuppliersToResponses(suppliers []entity.Supplier) []dto.SupplierResponse {
	responses := make([]dto.SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = *SupplierToResponse(&suppliers[i])
	}
	return responses
}

func invoiceLineItemsToRequests(items entity.InvoiceLineItems) []dto.InvoiceLineItemRequest {
	if len(items) == 0 {
		return nil
	}
	result := make([]dto.InvoiceLineItemRequest, len(items))
	for i, item := range items {
		result[i] = dto.InvoiceLineItemRequest{
			Description: item.Description,
			Amount:      item.Amount,
		}
	}
	return result
}

func invoicePaymentsToResponses(payments entity.InvoicePayments) []dto.InvoicePaymentResponse {
	if len(payments) == 0 {
		return nil
	}
	result := make([]dto.InvoicePaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = dto.InvoicePaymentResponse{
			ExpenseID: p.ExpenseID,
			Amount:    p.Amount,
			Date:      formatDate(p.Date),
		}
	}
	return result
}

// SupplierInvoiceToResponse converts a SupplierInvoice entity to SupplierInvoiceResponse DTO.
// TotalPaid and OutstandingBalance are derived from the applied payments.
func SupplierInvoiceToResponse(invoice *entity.SupplierInvoice) *dto.SupplierInvoiceResponse {
	if invoice == nil {
		return nil
	}

	return &dto.SupplierInvoiceResponse{
		ID:                 invoice.ID,
		SupplierID:         invoice.SupplierID,
		InvoiceNumber:      invoice.InvoiceNumber,
		InvoiceDate:        formatDate(invoice.InvoiceDate),
		DueDate:            formatDatePtr(invoice.DueDate),
		Amount:             invoice.Amount,
		Status:             string(invoice.Status),
		Items:              invoiceLineItemsToRequests(invoice.Items),
		Payments:           invoicePaymentsToResponses(invoice.Payments),
		TotalPaid:          invoice.TotalPaid(),
		OutstandingBalance: invoice.Outstanding(),
		CreatedAt:          invoice.CreatedAt,
		UpdatedAt:          invoice.UpdatedAt,
	}
}

// SupplierInvoicesToResponses converts a slice of SupplierInvoice entities to slice of SupplierInvoiceResponse DTOs
func SupplierInvoicesToResponses(invoices []entity.SupplierInvoice) []dto.SupplierInvoiceResponse {
	responses := make([]dto.SupplierInvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = *SupplierInvoiceToResponse(&invoices[i])
	}
	return responses
}
