package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treatmentDefinitionRepository struct{}

func NewTreatmentDefinitionRepository() domainRepo.TreatmentDefinitionRepository {
	return &treatmentDefinitionRepository{}
}

func (r *treatmentDefinitionRepository) Create(db *gorm.DB, definition *entity.TreatmentDefinition) error {
	return db.Create(definition).Error
}

func (r *treatmentDefinitionRepository) Update(db *gorm.DB, definition *entity.TreatmentDefinition) error {
	return db.Save(definition).Error
}

func (r *treatmentDefinitionRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.TreatmentDefinition, error) {
	var definition entity.TreatmentDefinition
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&definition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &definition, nil
}

func (r *treatmentDefinitionRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.TreatmentDefinition, error) {
	var definitions []entity.TreatmentDefinition
	err := db.Where("user_id = ?", userID).Order("name ASC").Find(&definitions).Error
	if err != nil {
		return nil, err
	}
	return definitions, nil
}

func (r *treatmentDefinitionRepository) Delete(db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	result := db.Where("user_id = ? AND id = ?", userID, id).Delete(&entity.TreatmentDefinition{})
	return result.RowsAffected, result.Error
}
