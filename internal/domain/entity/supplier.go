package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupplierType distinguishes material vendors from dental labs
type SupplierType string

const (
	SupplierTypeMaterial  SupplierType = "Material Supplier"
	SupplierTypeDentalLab SupplierType = "Dental Lab"
)

func (t SupplierType) IsValid() bool {
	return t == SupplierTypeMaterial || t == SupplierTypeDentalLab
}

// Supplier represents a vendor the clinic buys materials or lab work from
type Supplier struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string       `gorm:"type:varchar(255);not null" json:"name"`
	ContactPerson string       `gorm:"type:varchar(255)" json:"contact_person,omitempty"`
	Phone         string       `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email         string       `gorm:"type:varchar(255)" json:"email,omitempty"`
	Type          SupplierType `gorm:"type:varchar(30);not null" json:"type"`
	CreatedAt     time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
