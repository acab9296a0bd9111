package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LabCaseRepository interface {
	Create(db *gorm.DB, labCase *entity.LabCase) error
	Update(db *gorm.DB, labCase *entity.LabCase) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.LabCase, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.LabCase, error)
	FindByPatient(db *gorm.DB, userID, patientID uuid.UUID) ([]entity.LabCase, error)
}
