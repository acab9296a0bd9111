package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierInvoiceRepository interface {
	Create(db *gorm.DB, invoice *entity.SupplierInvoice) error
	Update(db *gorm.DB, invoice *entity.SupplierInvoice) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.SupplierInvoice, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.SupplierInvoice, error)
	FindBySupplier(db *gorm.DB, userID, supplierID uuid.UUID) ([]entity.SupplierInvoice, error)
}
