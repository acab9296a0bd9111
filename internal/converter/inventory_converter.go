package converter

import (
	"github.com/dralafandy/CuraSoft/internal/delivery/dto"
	"github.com/dralafandy/CuraSoft/internal/domain/entity"
)

// InventoryItemToResponse converts an InventoryItem entity to InventoryItemResponse DTO
func InventoryItemToResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	if item == nil {
		return nil
	}

	return &dto.InventoryItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		SupplierID:    item.SupplierID,
		CurrentStock:  item.CurrentStock,
		UnitCost:      item.UnitCost,
		MinStockLevel: item.MinStockLevel,
		ExpiryDate:    formatDatePtr(item.ExpiryDate),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// InventoryItemsToResponses converts a slice of InventoryItem entities to slice of InventoryItemResponse DTOs
func InventoryItemsToResponses(items []entity.InventoryItem) []dto.InventoryItemResponse {
	responses := make([]dto.InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = *InventoryItemToResponse(&items[i])
	}
	return responses
}
