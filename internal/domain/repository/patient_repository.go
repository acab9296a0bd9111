package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	Update(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Patient, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Patient, error)
	Delete(db *gorm.DB, userID, id uuid.UUID) (int64, error)
}
