package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type labCaseRepository struct{}

func NewLabCaseRepository() domainRepo.LabCaseRepository {
	return &labCaseRepository{}
}

func (r *labCaseRepository) Create(db *gorm.DB, labCase *entity.LabCase) error {
	return db.Create(labCase).Error
}

func (r *labCaseRepository) Update(db *gorm.DB, labCase *entity.LabCase) error {
	return db.Save(labCase).Error
}

func (r *labCaseRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.LabCase, error) {
	var labCase entity.LabCase
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&labCase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &labCase, nil
}

func (r *labCaseRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.LabCase, error) {
	var cases []entity.LabCase
	err := db.Where("user_id = ?", userID).Order("due_date ASC").Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *labCaseRepository) FindByPatient(db *gorm.DB, userID, patientID uuid.UUID) ([]entity.LabCase, error) {
	var cases []entity.LabCase
	err := db.Where("user_id = ? AND patient_id = ?", userID, patientID).
		Order("due_date ASC").
		Find(&cases).Error
	if err != nil {
		return nil, err
	}
	return cases, nil
}
