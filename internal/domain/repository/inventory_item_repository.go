package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItemRepository interface {
	Create(db *gorm.DB, item *entity.InventoryItem) error
	Update(db *gorm.DB, item *entity.InventoryItem) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.InventoryItem, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.InventoryItem, error)
	// AdjustStock applies a signed delta to current stock; returns affected
	// rows (0 when the item does not exist for this account).
	AdjustStock(db *gorm.DB, userID, id uuid.UUID, delta int) (int64, error)
}
