package entity

import "testing"

func TestNewDentalChart_HasAllTeethHealthy(t *testing.T) {
	chart := NewDentalChart()

	if len(chart) != 32 {
		t.Fatalf("expected 32 teeth, got %d", len(chart))
	}
	for _, quadrant := range []string{"UR", "UL", "LL", "LR"} {
		for i := '1'; i <= '8'; i++ {
			id := quadrant + string(i)
			tooth, ok := chart[id]
			if !ok {
				t.Fatalf("missing tooth %s", id)
			}
			if tooth.Status != ToothStatusHealthy {
				t.Fatalf("tooth %s expected HEALTHY, got %s", id, tooth.Status)
			}
			if tooth.Notes != "" {
				t.Fatalf("tooth %s expected empty notes, got %q", id, tooth.Notes)
			}
		}
	}
}

func TestDentalChart_UpdateTooth(t *testing.T) {
	chart := NewDentalChart()

	updated, err := chart.UpdateTooth("UR3", Tooth{Status: ToothStatusCavity, Notes: "watch"})
	if err != nil {
		t.Fatalf("UpdateTooth error: %v", err)
	}
	if updated["UR3"].Status != ToothStatusCavity {
		t.Fatalf("expected CAVITY on updated chart, got %s", updated["UR3"].Status)
	}
	if updated["UR3"].Notes != "watch" {
		t.Fatalf("expected notes to carry over, got %q", updated["UR3"].Notes)
	}

	// original chart must not change
	if chart["UR3"].Status != ToothStatusHealthy {
		t.Fatalf("original chart was mutated: %s", chart["UR3"].Status)
	}
	if len(updated) != 32 {
		t.Fatalf("updated chart expected 32 teeth, got %d", len(updated))
	}
}

func TestDentalChart_UpdateTooth_UnknownID(t *testing.T) {
	chart := NewDentalChart()

	for _, id := range []string{"", "XX1", "UR9", "UR0", "ur1"} {
		if _, err := chart.UpdateTooth(id, Tooth{Status: ToothStatusFilling}); err == nil {
			t.Fatalf("expected error for tooth id %q", id)
		}
	}
}

func TestToothStatus_IsValid(t *testing.T) {
	valid := []ToothStatus{
		ToothStatusHealthy, ToothStatusFilling, ToothStatusCrown,
		ToothStatusMissing, ToothStatusImplant, ToothStatusRootCanal, ToothStatusCavity,
	}
	for _, s := range valid {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if ToothStatus("BROKEN").IsValid() {
		t.Fatal("expected BROKEN to be invalid")
	}
	if ToothStatus("healthy").IsValid() {
		t.Fatal("status check must be case sensitive")
	}
}
