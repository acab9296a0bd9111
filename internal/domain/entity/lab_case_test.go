package entity

import "testing"

func TestLabCaseStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    LabCaseStatus
		to      LabCaseStatus
		allowed bool
	}{
		{LabCaseStatusDraft, LabCaseStatusSentToLab, true},
		{LabCaseStatusDraft, LabCaseStatusCancelled, true},
		{LabCaseStatusDraft, LabCaseStatusReceivedFromLab, false},
		{LabCaseStatusDraft, LabCaseStatusFittedToPatient, false},
		{LabCaseStatusSentToLab, LabCaseStatusReceivedFromLab, true},
		{LabCaseStatusSentToLab, LabCaseStatusCancelled, true},
		{LabCaseStatusSentToLab, LabCaseStatusFittedToPatient, false},
		{LabCaseStatusReceivedFromLab, LabCaseStatusFittedToPatient, true},
		{LabCaseStatusReceivedFromLab, LabCaseStatusSentToLab, false},
		{LabCaseStatusFittedToPatient, LabCaseStatusCancelled, false},
		{LabCaseStatusCancelled, LabCaseStatusSentToLab, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestLabCase_IsPending(t *testing.T) {
	pending := []LabCaseStatus{LabCaseStatusDraft, LabCaseStatusSentToLab, LabCaseStatusReceivedFromLab}
	for _, s := range pending {
		lc := LabCase{Status: s}
		if !lc.IsPending() {
			t.Fatalf("expected %s to be pending", s)
		}
	}
	for _, s := range []LabCaseStatus{LabCaseStatusFittedToPatient, LabCaseStatusCancelled} {
		lc := LabCase{Status: s}
		if lc.IsPending() {
			t.Fatalf("expected %s to not be pending", s)
		}
	}
}
