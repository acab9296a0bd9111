package repository

import (
	"errors"
	"time"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"
	domainRepo "github.com/dralafandy/CuraSoft/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("user_id = ? AND id = ?", userID, id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("user_id = ?", userID).Order("start_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindInRange(db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("user_id = ? AND start_time >= ? AND start_time <= ?", userID, from, to).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// MarkReminderSent flips the flag only when it is still unset, so a
// concurrent double-fire updates zero rows.
func (r *appointmentRepository) MarkReminderSent(db *gorm.DB, userID, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("user_id = ? AND id = ? AND reminder_sent = ?", userID, id, false).
		Update("reminder_sent", true)
	return result.RowsAffected, result.Error
}
