package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supplierRepository struct{}

func NewSupplierRepository() domainRepo.SupplierRepository {
	return &supplierRepository{}
}

func (r *supplierRepository) Create(db *gorm.DB, supplier *entity.Supplier) error {
	return db.Create(supplier).Error
}

func (r *supplierRepository) Update(db *gorm.DB, supplier *entity.Supplier) error {
	return db.Save(supplier).Error
}

func (r *supplierRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	err := db.Where("user_id = ?", userID).Order("name ASC").Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) Delete(db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	result := db.Where("user_id = ? AND id = ?", userID, id).Delete(&entity.Supplier{})
	return result.RowsAffected, result.Error
}
