package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender constants
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Patient represents a clinic patient record, owned by one clinic account
type Patient struct {
	ID                    uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Name                  string      `gorm:"type:varchar(255);not null" json:"name"`
	DateOfBirth           time.Time   `gorm:"type:date;not null" json:"date_of_birth"`
	Gender                Gender      `gorm:"type:varchar(10);not null" json:"gender"`
	Phone                 string      `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email                 string      `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address               string      `gorm:"type:text" json:"address,omitempty"`
	MedicalHistory        string      `gorm:"type:text" json:"medical_history,omitempty"`
	TreatmentNotes        string      `gorm:"type:text" json:"treatment_notes,omitempty"`
	Allergies             string      `gorm:"type:text" json:"allergies,omitempty"`
	Medications           string      `gorm:"type:text" json:"medications,omitempty"`
	InsuranceProvider     string      `gorm:"type:varchar(255)" json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string      `gorm:"type:varchar(100)" json:"insurance_policy_number,omitempty"`
	EmergencyContactName  string      `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string      `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	LastVisit             *time.Time  `gorm:"type:date" json:"last_visit,omitempty"`
	DentalChart           DentalChart `gorm:"type:jsonb" json:"dental_chart"`
	CreatedAt             time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// AgeAt returns the patient's whole-year age at the given instant
func (p *Patient) AgeAt(now time.Time) int {
	age := now.Year() - p.DateOfBirth.Year()
	anniversary := p.DateOfBirth.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}
