package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
	"github.com/dralafandy/CuraSoft/pkg/validator"
)

type LabCaseHandler struct {
	labCaseUsecase usecase.LabCaseUsecase
	validator      *validator.CustomValidator
}

func NewLabCaseHandler(labCaseUsecase usecase.LabCaseUsecase, validator *validator.CustomValidator) *LabCaseHandler {
	return &LabCaseHandler{
		labCaseUsecase: labCaseUsecase,
		validator:      validator,
	}
}

func (h *LabCaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateLabCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	labCase, err := h.labCaseUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrSupplierNotFound:
			response.NotFound(w, "Lab not found")
		case usecase.ErrNotDentalLab:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create lab case")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Lab case created successfully", labCase)
}

// UpdateStatus advances the case through the lab workflow
func (h *LabCaseHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateLabCaseStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	labCase, err := h.labCaseUsecase.UpdateStatus(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrLabCaseNotFound:
			response.NotFound(w, "Lab case not found")
		case usecase.ErrInvalidStatusTransition:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update lab case status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab case status updated successfully", labCase)
}

func (h *LabCaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	labCase, err := h.labCaseUsecase.GetByID(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrLabCaseNotFound:
			response.NotFound(w, "Lab case not found")
		default:
			response.InternalServerError(w, "Failed to get lab case")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab case retrieved successfully", labCase)
}

func (h *LabCaseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	cases, err := h.labCaseUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list lab cases")
		return
	}

	response.Success(w, http.StatusOK, "Lab cases retrieved successfully", cases)
}

func (h *LabCaseHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	cases, err := h.labCaseUsecase.ListByPatient(r.Context(), userID, patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list lab cases")
		return
	}

	response.Success(w, http.StatusOK, "Lab cases retrieved successfully", cases)
}
