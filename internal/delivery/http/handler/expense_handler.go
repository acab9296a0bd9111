package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
	"github.com/dralafandy/CuraSoft/pkg/validator"
)

type ExpenseHandler struct {
	expenseUsecase usecase.ExpenseUsecase
	validator      *validator.CustomValidator
}

func NewExpenseHandler(expenseUsecase usecase.ExpenseUsecase, validator *validator.CustomValidator) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUsecase: expenseUsecase,
		validator:      validator,
	}
}

// Create records an expense; when linked to a supplier invoice the amount is
// also applied as a payment on that invoice
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	expense, err := h.expenseUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSupplierInvoiceNotFound:
			response.NotFound(w, "Supplier invoice not found")
		case usecase.ErrPaymentExceedsBalance:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case usecase.ErrNonPositiveAmount, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create expense")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Expense created successfully", expense)
}

func (h *ExpenseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	expense, err := h.expenseUsecase.GetByID(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrExpenseNotFound:
			response.NotFound(w, "Expense not found")
		default:
			response.InternalServerError(w, "Failed to get expense")
		}
		return
	}

	response.Success(w, http.StatusOK, "Expense retrieved successfully", expense)
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	expenses, err := h.expenseUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list expenses")
		return
	}

	response.Success(w, http.StatusOK, "Expenses retrieved successfully", expenses)
}
