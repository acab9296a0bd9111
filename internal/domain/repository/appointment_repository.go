package repository

import (
	"time"

	"github.com/dralafandy/CuraSoft/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, userID, id uuid.UUID) (*entity.Appointment, error)
	FindAllByUser(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error)
	FindInRange(db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	// MarkReminderSent flips the one-way reminder flag; returns affected rows
	// so a concurrent double-fire is detectable.
	MarkReminderSent(db *gorm.DB, userID, id uuid.UUID) (int64, error)
}
