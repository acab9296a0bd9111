package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DentistRepository interface {
	Create(db *gorm.DB, dentist *entity.Dentist) error
	Update(db *gorm.DB, dentist *entity.Dentist) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Dentist, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Dentist, error)
	Delete(db *gorm.DB, userID, id uuid.UUID) (int64, error)
}
