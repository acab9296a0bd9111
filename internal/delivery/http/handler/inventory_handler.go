package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/usecase"
	"github.com/dralafandy/CuraSoft/pkg/response"
	"github.com/dralafandy/CuraSoft/pkg/validator"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create inventory item")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Inventory item created successfully", item)
}

func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInventoryItemNotFound:
			response.NotFound(w, "Inventory item not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update inventory item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Inventory item updated successfully", item)
}

func (h *InventoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.inventoryUsecase.GetByID(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrInventoryItemNotFound:
			response.NotFound(w, "Inventory item not found")
		default:
			response.InternalServerError(w, "Failed to get inventory item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Inventory item retrieved successfully", item)
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.inventoryUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list inventory items")
		return
	}

	response.Success(w, http.StatusOK, "Inventory items retrieved successfully", items)
}

// ListLowStock returns items at or below their low stock threshold
func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.inventoryUsecase.ListLowStock(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list low stock items")
		return
	}

	response.Success(w, http.StatusOK, "Low stock items retrieved successfully", items)
}

// AdjustStock applies a positive or negative delta to an item's stock
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.AdjustStock(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInventoryItemNotFound:
			response.NotFound(w, "Inventory item not found")
		case usecase.ErrInsufficientStock:
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to adjust stock")
		}
		return
	}

	response.Success(w, http.StatusOK, "Stock adjusted successfully", item)
}
