package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dentistRepository struct{}

func NewDentistRepository() domainRepo.DentistRepository {
	return &dentistRepository{}
}

func (r *dentistRepository) Create(db *gorm.DB, dentist *entity.Dentist) error {
	return db.Create(dentist).Error
}

func (r *dentistRepository) Update(db *gorm.DB, dentist *entity.Dentist) error {
	return db.Save(dentist).Error
}

func (r *dentistRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Dentist, error) {
	var dentist entity.Dentist
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&dentist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentist, nil
}

func (r *dentistRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Dentist, error) {
	var dentists []entity.Dentist
	err := db.Where("user_id = ?", userID).Order("name ASC").Find(&dentists).Error
	if err != nil {
		return nil, err
	}
	return dentists, nil
}

func (r *dentistRepository) Delete(db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	result := db.Where("user_id = ? AND id = ?", userID, id).Delete(&entity.Dentist{})
	return result.RowsAffected, result.Error
}
