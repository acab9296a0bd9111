package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type treatmentRecordRepository struct{}

func NewTreatmentRecordRepository() domainRepo.TreatmentRecordRepository {
	return &treatmentRecordRepository{}
}

func (r *treatmentRecordRepository) Create(db *gorm.DB, record *entity.TreatmentRecord) error {
	return db.Create(record).Error
}

func (r *treatmentRecordRepository) Update(db *gorm.DB, record *entity.TreatmentRecord) error {
	return db.Save(record).Error
}

func (r *treatmentRecordRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.TreatmentRecord, error) {
	var record entity.TreatmentRecord
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *treatmentRecordRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.TreatmentRecord, error) {
	var records []entity.TreatmentRecord
	err := db.Where("user_id = ?", userID).Order("treatment_date DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *treatmentRecordRepository) FindByPatient(db *gorm.DB, userID, patientID uuid.UUID) ([]entity.TreatmentRecord, error) {
	var records []entity.TreatmentRecord
	err := db.Where("user_id = ? AND patient_id = ?", userID, patientID).
		Order("treatment_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
