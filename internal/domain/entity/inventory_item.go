package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem represents a consumable material tracked by the clinic
type InventoryItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	CurrentStock  int             `gorm:"not null;default:0" json:"current_stock"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_cost"`
	MinStockLevel int             `gorm:"not null;default:0" json:"min_stock_level"`
	ExpiryDate    *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// LowStockAt reports whether stock is at or below the item's own minimum
// level, falling back to the clinic-wide default when no level is set.
func (i *InventoryItem) LowStockAt(defaultThreshold int) bool {
	threshold := defaultThreshold
	if i.MinStockLevel > 0 {
		threshold = i.MinStockLevel
	}
	return i.CurrentStock <= threshold
}
