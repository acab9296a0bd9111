package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ToothStatus represents the clinical condition recorded for a single tooth
type ToothStatus string

const (
	ToothStatusHealthy   ToothStatus = "HEALTHY"
	ToothStatusFilling   ToothStatus = "FILLING"
	ToothStatusCrown     ToothStatus = "CROWN"
	ToothStatusMissing   ToothStatus = "MISSING"
	ToothStatusImplant   ToothStatus = "IMPLANT"
	ToothStatusRootCanal ToothStatus = "ROOT_CANAL"
	ToothStatusCavity    ToothStatus = "CAVITY"
)

// IsValid checks whether the status is one of the known clinical conditions
func (s ToothStatus) IsValid() bool {
	switch s {
	case ToothStatusHealthy, ToothStatusFilling, ToothStatusCrown,
		ToothStatusMissing, ToothStatusImplant, ToothStatusRootCanal, ToothStatusCavity:
		return true
	}
	return false
}

// Tooth is one entry of a patient's dental chart
type Tooth struct {
	Status ToothStatus `json:"status"`
	Notes  string      `json:"notes"`
}

// DentalChart maps a fixed set of 32 tooth IDs (quadrant + index, e.g. "UR1")
// to their recorded condition. Keys are never added or removed after creation,
// only replaced one at a time.
type DentalChart map[string]Tooth

// ErrUnknownTooth is returned when a tooth ID is not one of the 32 fixed keys
var ErrUnknownTooth = errors.New("unknown tooth id")

var chartQuadrants = []string{"UR", "UL", "LL", "LR"}

// ToothIDs returns the 32 valid tooth IDs in quadrant order
func ToothIDs() []string {
	ids := make([]string, 0, 32)
	for _, q := range chartQuadrants {
		for i := 1; i <= 8; i++ {
			ids = append(ids, fmt.Sprintf("%s%d", q, i))
		}
	}
	return ids
}

// NewDentalChart creates a chart with all 32 teeth marked healthy
func NewDentalChart() DentalChart {
	chart := make(DentalChart, 32)
	for _, id := range ToothIDs() {
		chart[id] = Tooth{Status: ToothStatusHealthy, Notes: ""}
	}
	return chart
}

// UpdateTooth returns a copy of the chart with the one entry replaced.
// The input chart is left untouched.
func (c DentalChart) UpdateTooth(toothID string, tooth Tooth) (DentalChart, error) {
	if _, ok := c[toothID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTooth, toothID)
	}
	updated := make(DentalChart, len(c))
	for id, t := range c {
		updated[id] = t
	}
	updated[toothID] = tooth
	return updated, nil
}

// Value returns json value, implement driver.Valuer interface
func (c DentalChart) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan scans a jsonb value into the chart, implements sql.Scanner interface
func (c *DentalChart) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	bytes, err := jsonbBytes(value)
	if err != nil {
		return err
	}
	result := DentalChart{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*c = result
	return nil
}

// jsonbBytes normalizes the raw driver value of a jsonb column
func jsonbBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}
}
