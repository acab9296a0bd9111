package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreatmentRecordRepository interface {
	Create(db *gorm.DB, record *entity.TreatmentRecord) error
	Update(db *gorm.DB, record *entity.TreatmentRecord) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.TreatmentRecord, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.TreatmentRecord, error)
	FindByPatient(db *gorm.DB, userID, patientID uuid.UUID) ([]entity.TreatmentRecord, error)
}
