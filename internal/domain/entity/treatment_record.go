package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsumedItem records one inventory item used during a treatment.
// Cost is the total charged for the consumed quantity.
type ConsumedItem struct {
	InventoryItemID uuid.UUID       `json:"inventory_item_id"`
	Quantity        int             `json:"quantity"`
	Cost            decimal.Decimal `json:"cost"`
}

// ConsumedItems is stored as a jsonb column on the treatment record
type ConsumedItems []ConsumedItem

// Value returns json value, implement driver.Valuer interface
func (c ConsumedItems) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan scans a jsonb value, implements sql.Scanner interface
func (c *ConsumedItems) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	result := ConsumedItems{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*c = result
	return nil
}

// TotalCost sums the material costs of all consumed items
func (c ConsumedItems) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Cost)
	}
	return total
}

// TreatmentRecord is a billed procedure instance. TotalTreatmentCost,
// DoctorShare and ClinicShare are computed once at creation from the
// definition's base price and percentages, then stored; they are never
// recomputed from the definition afterwards.
type TreatmentRecord struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	PatientID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	DentistID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"dentist_id"`
	TreatmentDefinitionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"treatment_definition_id"`
	TreatmentDate         time.Time       `gorm:"type:date;not null;index" json:"treatment_date"`
	Notes                 string          `gorm:"type:text" json:"notes,omitempty"`
	InventoryItemsUsed    ConsumedItems   `gorm:"type:jsonb" json:"inventory_items_used,omitempty"`
	TotalTreatmentCost    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_treatment_cost"`
	DoctorShare           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"doctor_share"`
	ClinicShare           decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"clinic_share"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TreatmentRecord) TableName() string {
	return "treatment_records"
}

// PriceTreatment derives the stored cost fields for a new record:
// total = basePrice + materials, doctorShare = total * doctorPct rounded to
// cents, clinicShare = total - doctorShare so the two always sum exactly.
func PriceTreatment(def *TreatmentDefinition, used ConsumedItems) (total, doctorShare, clinicShare decimal.Decimal) {
	total = def.BasePrice.Add(used.TotalCost())
	doctorShare = total.Mul(def.DoctorPercentage).Round(2)
	clinicShare = total.Sub(doctorShare)
	return total, doctorShare, clinicShare
}
