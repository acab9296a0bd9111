package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestPriceTreatment(t *testing.T) {
	cases := []struct {
		name        string
		basePrice   string
		doctorPct   string
		materials   []string
		total       string
		doctorShare string
		clinicShare string
	}{
		{
			name:        "no materials",
			basePrice:   "100",
			doctorPct:   "0.4",
			total:       "100",
			doctorShare: "40",
			clinicShare: "60",
		},
		{
			name:        "with materials",
			basePrice:   "200",
			doctorPct:   "0.35",
			materials:   []string{"25.50", "14.50"},
			total:       "240",
			doctorShare: "84",
			clinicShare: "156",
		},
		{
			name:        "rounded share",
			basePrice:   "99.99",
			doctorPct:   "0.3333",
			total:       "99.99",
			doctorShare: "33.33",
			clinicShare: "66.66",
		},
	}
	for _, tc := range cases {
		def := &TreatmentDefinition{
			BasePrice:        decimal.RequireFromString(tc.basePrice),
			DoctorPercentage: decimal.RequireFromString(tc.doctorPct),
		}
		var used ConsumedItems
		for _, cost := range tc.materials {
			used = append(used, ConsumedItem{
				InventoryItemID: uuid.New(),
				Quantity:        1,
				Cost:            decimal.RequireFromString(cost),
			})
		}

		total, doctorShare, clinicShare := PriceTreatment(def, used)
		if total.String() != tc.total {
			t.Fatalf("%s: expected total %s, got %s", tc.name, tc.total, total)
		}
		if doctorShare.String() != tc.doctorShare {
			t.Fatalf("%s: expected doctor share %s, got %s", tc.name, tc.doctorShare, doctorShare)
		}
		if clinicShare.String() != tc.clinicShare {
			t.Fatalf("%s: expected clinic share %s, got %s", tc.name, tc.clinicShare, clinicShare)
		}
		// shares must always reassemble the total exactly
		if !doctorShare.Add(clinicShare).Equal(total) {
			t.Fatalf("%s: shares %s + %s do not sum to total %s", tc.name, doctorShare, clinicShare, total)
		}
	}
}

func TestTreatmentDefinition_SplitIsValid(t *testing.T) {
	cases := []struct {
		doctorPct string
		clinicPct string
		valid     bool
	}{
		{"0.4", "0.6", true},
		{"0", "1", true},
		{"1", "0", true},
		{"0.3333", "0.6667", true},
		{"0.5", "0.4", false},
		{"0.6", "0.6", false},
	}
	for _, tc := range cases {
		def := &TreatmentDefinition{
			DoctorPercentage: decimal.RequireFromString(tc.doctorPct),
			ClinicPercentage: decimal.RequireFromString(tc.clinicPct),
		}
		if got := def.SplitIsValid(); got != tc.valid {
			t.Fatalf("split %s/%s: expected %v, got %v", tc.doctorPct, tc.clinicPct, tc.valid, got)
		}
	}
}
