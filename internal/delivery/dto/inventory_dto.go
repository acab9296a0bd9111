package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateInventoryItemRequest struct {
	Name          string          `json:"name" validate:"required,max=255"`
	Description   string          `json:"description,omitempty"`
	SupplierID    *uuid.UUID      `json:"supplier_id,omitempty"`
	CurrentStock  int             `json:"current_stock" validate:"gte=0"`
	UnitCost      decimal.Decimal `json:"unit_cost" validate:"required"`
	MinStockLevel int             `json:"min_stock_level" validate:"gte=0"`
	ExpiryDate    string          `json:"expiry_date,omitempty"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type InventoryItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SupplierID    *uuid.UUID      `json:"supplier_id,omitempty"`
	CurrentStock  int             `json:"current_stock"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	MinStockLevel int             `json:"min_stock_level"`
	ExpiryDate    string          `json:"expiry_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int                     `json:"total"`
}
