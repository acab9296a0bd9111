package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dentist represents a practicing doctor at the clinic
type Dentist struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty string    `gorm:"type:varchar(255)" json:"specialty,omitempty"`
	Color     string    `gorm:"type:varchar(20)" json:"color,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Dentist) TableName() string {
	return "dentists"
}
