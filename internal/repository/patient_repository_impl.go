package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("user_id = ?", userID).Order("name ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Delete(db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	result := db.Where("user_id = ? AND id = ?", userID, id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
