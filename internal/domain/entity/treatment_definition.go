package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TreatmentDefinition is a billable procedure template. The doctor/clinic
// percentages are captured into each TreatmentRecord at creation time, so
// later edits here never affect past records.
type TreatmentDefinition struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	BasePrice        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_price"`
	DoctorPercentage decimal.Decimal `gorm:"type:decimal(5,4);not null" json:"doctor_percentage"`
	ClinicPercentage decimal.Decimal `gorm:"type:decimal(5,4);not null" json:"clinic_percentage"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TreatmentDefinition) TableName() string {
	return "treatment_definitions"
}

// splitTolerance absorbs rounding in percentages entered as e.g. 0.3333/0.6667
var splitTolerance = decimal.NewFromFloat(0.0001)

// SplitIsValid checks that doctor and clinic percentages sum to 1
func (d *TreatmentDefinition) SplitIsValid() bool {
	sum := d.DoctorPercentage.Add(d.ClinicPercentage)
	return sum.Sub(decimal.NewFromInt(1)).Abs().LessThanOrEqual(splitTolerance)
}
