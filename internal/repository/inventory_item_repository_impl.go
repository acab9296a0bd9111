package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryItemRepository struct{}

func NewInventoryItemRepository() domainRepo.InventoryItemRepository {
	return &inventoryItemRepository{}
}

func (r *inventoryItemRepository) Create(db *gorm.DB, item *entity.InventoryItem) error {
	return db.Create(item).Error
}

func (r *inventoryItemRepository) Update(db *gorm.DB, item *entity.InventoryItem) error {
	return db.Save(item).Error
}

func (r *inventoryItemRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryItemRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := db.Where("user_id = ?", userID).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryItemRepository) AdjustStock(db *gorm.DB, userID, id uuid.UUID, delta int) (int64, error) {
	result := db.Model(&entity.InventoryItem{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("current_stock", gorm.Expr("current_stock + ?", delta))
	return result.RowsAffected, result.Error
}
