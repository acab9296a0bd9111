package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
	"github.com/dralafandy/CuraSoft/pkg/validator"
)

type DentistHandler struct {
	dentistUsecase usecase.DentistUsecase
	validator      *validator.CustomValidator
}

func NewDentistHandler(dentistUsecase usecase.DentistUsecase, validator *validator.CustomValidator) *DentistHandler {
	return &DentistHandler{
		dentistUsecase: dentistUsecase,
		validator:      validator,
	}
}

func (h *DentistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateDentistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dentist, err := h.dentistUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create dentist")
		return
	}

	response.Success(w, http.StatusCreated, "Dentist created successfully", dentist)
}

func (h *DentistHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateDentistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dentist, err := h.dentistUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		default:
			response.InternalServerError(w, "Failed to update dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist updated successfully", dentist)
}

func (h *DentistHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	dentist, err := h.dentistUsecase.GetByID(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		default:
			response.InternalServerError(w, "Failed to get dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist retrieved successfully", dentist)
}

func (h *DentistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	dentists, err := h.dentistUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list dentists")
		return
	}

	response.Success(w, http.StatusOK, "Dentists retrieved successfully", dentists)
}

func (h *DentistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.dentistUsecase.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrDentistNotFound:
			response.NotFound(w, "Dentist not found")
		default:
			response.InternalServerError(w, "Failed to delete dentist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentist deleted successfully", nil)
}
