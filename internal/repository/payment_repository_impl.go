package repository

import (
	"errors"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	return db.Save(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("user_id = ?", userID).Order("date DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByPatient(db *gorm.DB, userID, patientID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("user_id = ? AND patient_id = ?", userID, patientID).
		Order("date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
