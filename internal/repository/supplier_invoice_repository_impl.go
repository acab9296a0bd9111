package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supplierInvoiceRepository struct{}

func NewSupplierInvoiceRepository() domainRepo.SupplierInvoiceRepository {
	return &supplierInvoiceRepository{}
}

func (r *supplierInvoiceRepository) Create(db *gorm.DB, invoice *entity.SupplierInvoice) error {
	return db.Create(invoice).Error
}

func (r *supplierInvoiceRepository) Update(db *gorm.DB, invoice *entity.SupplierInvoice) error {
	return db.Save(invoice).Error
}

func (r *supplierInvoiceRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.SupplierInvoice, error) {
	var invoice entity.SupplierInvoice
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *supplierInvoiceRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.SupplierInvoice, error) {
	var invoices []entity.SupplierInvoice
	err := db.Where("user_id = ?", userID).Order("invoice_date DESC").Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *supplierInvoiceRepository) FindBySupplier(db *gorm.DB, userID, supplierID uuid.UUID) ([]entity.SupplierInvoice, error) {
	var invoices []entity.SupplierInvoice
	err := db.Where("user_id = ? AND supplier_id = ?", userID, supplierID).
		Order("invoice_date DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}
