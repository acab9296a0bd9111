package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
	"github.com/dralafandy/CuraSoft/pkg/validator"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrNonPositiveAmount, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create payment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Payment created successfully", payment)
}

func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	payment, err := h.paymentUsecase.GetByID(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrPaymentNotFound:
			response.NotFound(w, "Payment not found")
		default:
			response.InternalServerError(w, "Failed to get payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment retrieved successfully", payment)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	payments, err := h.paymentUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	payments, err := h.paymentUsecase.ListByPatient(r.Context(), userID, patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

// GetPatientBalance returns charges, payments and the outstanding balance
func (h *PaymentHandler) GetPatientBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	balance, err := h.paymentUsecase.GetPatientBalance(r.Context(), userID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to compute patient balance")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient balance retrieved successfully", balance)
}
