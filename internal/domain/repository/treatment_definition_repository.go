package repository

import (
	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TreatmentDefinitionRepository interface {
	Create(db *gorm.DB, definition *entity.TreatmentDefinition) error
	Update(db *gorm.DB, definition *entity.TreatmentDefinition) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.TreatmentDefinition, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.TreatmentDefinition, error)
	Delete(db *gorm.DB, userID, id uuid.UUID) (int64, error)
}
