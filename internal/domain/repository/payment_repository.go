package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	Update(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Payment, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Payment, error)
	FindByPatient(db *gorm.DB, userID, patientID uuid.UUID) ([]entity.Payment, error)
}
