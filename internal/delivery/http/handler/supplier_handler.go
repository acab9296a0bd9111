package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
	"github.com/dralafandy/CuraSoft/pkg/validator"
)

type SupplierHandler struct {
	supplierUsecase usecase.SupplierUsecase
	invoiceUsecase  usecase.SupplierInvoiceUsecase
	validator       *validator.CustomValidator
}

func NewSupplierHandler(
	supplierUsecase usecase.SupplierUsecase,
	invoiceUsecase usecase.SupplierInvoiceUsecase,
	validator *validator.CustomValidator,
) *SupplierHandler {
	return &SupplierHandler{
		supplierUsecase: supplierUsecase,
		invoiceUsecase:  invoiceUsecase,
		validator:       validator,
	}
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	supplier, err := h.supplierUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create supplier")
		return
	}

	response.Success(w, http.StatusCreated, "Supplier created successfully", supplier)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	supplier, err := h.supplierUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSupplierNotFound:
			response.NotFound(w, "Supplier not found")
		default:
			response.InternalServerError(w, "Failed to update supplier")
		}
		return
	}

	response.Success(w, http.StatusOK, "Supplier updated successfully", supplier)
}

func (h *SupplierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	supplier, err := h.supplierUsecase.GetByID(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrSupplierNotFound:
			response.NotFound(w, "Supplier not found")
		default:
			response.InternalServerError(w, "Failed to get supplier")
		}
		return
	}

	response.Success(w, http.StatusOK, "Supplier retrieved successfully", supplier)
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	suppliers, err := h.supplierUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list suppliers")
		return
	}

	response.Success(w, http.StatusOK, "Suppliers retrieved successfully", suppliers)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.supplierUsecase.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrSupplierNotFound:
			response.NotFound(w, "Supplier not found")
		default:
			response.InternalServerError(w, "Failed to delete supplier")
		}
		return
	}

	response.Success(w, http.StatusOK, "Supplier deleted successfully", nil)
}

func (h *SupplierHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateSupplierInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.invoiceUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSupplierNotFound:
			response.NotFound(w, "Supplier not found")
		case usecase.ErrNonPositiveAmount, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create supplier invoice")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Supplier invoice created successfully", invoice)
}

func (h *SupplierHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceUsecase.GetByID(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrSupplierInvoiceNotFound:
			response.NotFound(w, "Supplier invoice not found")
		default:
			response.InternalServerError(w, "Failed to get supplier invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Supplier invoice retrieved successfully", invoice)
}

func (h *SupplierHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	invoices, err := h.invoiceUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list supplier invoices")
		return
	}

	response.Success(w, http.StatusOK, "Supplier invoices retrieved successfully", invoices)
}

func (h *SupplierHandler) ListInvoicesBySupplier(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	supplierID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	invoices, err := h.invoiceUsecase.ListBySupplier(r.Context(), userID, supplierID)
	if err != nil {
		response.InternalServerError(w, "Failed to list supplier invoices")
		return
	}

	response.Success(w, http.StatusOK, "Supplier invoices retrieved successfully", invoices)
}

// PayInvoiceRemaining settles the invoice's outstanding balance as a
// SUPPLIES expense dated today
func (h *SupplierHandler) PayInvoiceRemaining(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceUsecase.PayRemaining(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrSupplierInvoiceNotFound:
			response.NotFound(w, "Supplier invoice not found")
		default:
			response.InternalServerError(w, "Failed to pay supplier invoice")
		}
		return
	}

	response.Success(w, http.StatusOK, "Supplier invoice paid successfully", invoice)
}
