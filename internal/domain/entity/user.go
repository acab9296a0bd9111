package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a clinic account. All clinic data (patients, appointments,
// financial records) is scoped to one account at the storage boundary.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	ClinicName string    `gorm:"type:varchar(255);not null" json:"clinic_name"`
	IsActive   *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
