package entity

import (
	"testing"
	"time"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusScheduled, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}

func TestReminderTime_Threshold(t *testing.T) {
	cases := []struct {
		reminder ReminderTime
		want     time.Duration
		enabled  bool
	}{
		{ReminderNone, 0, false},
		{ReminderOneHourBefore, time.Hour, true},
		{ReminderTwoHoursBefore, 2 * time.Hour, true},
		{ReminderOneDayBefore, 24 * time.Hour, true},
	}
	for _, tc := range cases {
		got, ok := tc.reminder.Threshold()
		if ok != tc.enabled || got != tc.want {
			t.Fatalf("%s: expected (%v, %v), got (%v, %v)", tc.reminder, tc.want, tc.enabled, got, ok)
		}
	}
}

func TestAppointment_ReminderDue(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		appt Appointment
		want bool
	}{
		{
			name: "inside window",
			appt: Appointment{StartTime: now.Add(30 * time.Minute), ReminderTime: ReminderOneHourBefore},
			want: true,
		},
		{
			name: "outside window",
			appt: Appointment{StartTime: now.Add(3 * time.Hour), ReminderTime: ReminderOneHourBefore},
			want: false,
		},
		{
			name: "already sent",
			appt: Appointment{StartTime: now.Add(30 * time.Minute), ReminderTime: ReminderOneHourBefore, ReminderSent: true},
			want: false,
		},
		{
			name: "reminder disabled",
			appt: Appointment{StartTime: now.Add(30 * time.Minute), ReminderTime: ReminderNone},
			want: false,
		},
		{
			name: "already started",
			appt: Appointment{StartTime: now.Add(-10 * time.Minute), ReminderTime: ReminderOneHourBefore},
			want: false,
		},
		{
			name: "exactly at threshold",
			appt: Appointment{StartTime: now.Add(time.Hour), ReminderTime: ReminderOneHourBefore},
			want: true,
		},
		{
			name: "day before window",
			appt: Appointment{StartTime: now.Add(20 * time.Hour), ReminderTime: ReminderOneDayBefore},
			want: true,
		},
	}
	for _, tc := range cases {
		if got := tc.appt.ReminderDue(now); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
