package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
	"github.com/dralafandy/CuraSoft/pkg/validator"
)

type TreatmentHandler struct {
	treatmentUsecase usecase.TreatmentUsecase
	validator        *validator.CustomValidator
}

func NewTreatmentHandler(treatmentUsecase usecase.TreatmentUsecase, validator *validator.CustomValidator) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentUsecase: treatmentUsecase,
		validator:        validator,
	}
}

func (h *TreatmentHandler) CreateDefinition(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateTreatmentDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	definition, err := h.treatmentUsecase.CreateDefinition(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidShareSplit:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create treatment definition")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment definition created successfully", definition)
}

func (h *TreatmentHandler) UpdateDefinition(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.CreateTreatmentDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	definition, err := h.treatmentUsecase.UpdateDefinition(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentDefinitionNotFound:
			response.NotFound(w, "Treatment definition not found")
		case usecase.ErrInvalidShareSplit:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update treatment definition")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment definition updated successfully", definition)
}

func (h *TreatmentHandler) GetDefinition(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	definition, err := h.treatmentUsecase.GetDefinition(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentDefinitionNotFound:
			response.NotFound(w, "Treatment definition not found")
		default:
			response.InternalServerError(w, "Failed to get treatment definition")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment definition retrieved successfully", definition)
}

func (h *TreatmentHandler) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	definitions, err := h.treatmentUsecase.ListDefinitions(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list treatment definitions")
		return
	}

	response.Success(w, http.StatusOK, "Treatment definitions retrieved successfully", definitions)
}

func (h *TreatmentHandler) DeleteDefinition(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.treatmentUsecase.DeleteDefinition(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrTreatmentDefinitionNotFound:
			response.NotFound(w, "Treatment definition not found")
		default:
			response.InternalServerError(w, "Failed to delete treatment definition")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment definition deleted successfully", nil)
}

// AddRecord bills a treatment, consuming inventory and capturing shares
func (h *TreatmentHandler) AddRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateTreatmentRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.treatmentUsecase.AddRecord(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentDefinitionNotFound:
			response.NotFound(w, "Treatment definition not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		case usecase.ErrInventoryItemNotFound:
			response.NotFound(w, "Inventory item not found")
		case usecase.ErrInsufficientStock:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create treatment record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Treatment record created successfully", record)
}

func (h *TreatmentHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateTreatmentRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.treatmentUsecase.UpdateRecord(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentRecordNotFound:
			response.NotFound(w, "Treatment record not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update treatment record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment record updated successfully", record)
}

func (h *TreatmentHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	record, err := h.treatmentUsecase.GetRecord(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrTreatmentRecordNotFound:
			response.NotFound(w, "Treatment record not found")
		default:
			response.InternalServerError(w, "Failed to get treatment record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Treatment record retrieved successfully", record)
}

func (h *TreatmentHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	records, err := h.treatmentUsecase.ListRecords(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list treatment records")
		return
	}

	response.Success(w, http.StatusOK, "Treatment records retrieved successfully", records)
}

func (h *TreatmentHandler) ListRecordsByPatient(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	patientID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	records, err := h.treatmentUsecase.ListRecordsByPatient(r.Context(), userID, patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list treatment records")
		return
	}

	response.Success(w, http.StatusOK, "Treatment records retrieved successfully", records)
}
