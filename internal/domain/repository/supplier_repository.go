package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(db *gorm.DB, supplier *entity.Supplier) error
	Update(db *gorm.DB, supplier *entity.Supplier) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Supplier, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Supplier, error)
	Delete(db *gorm.DB, userID, id uuid.UUID) (int64, error)
}
