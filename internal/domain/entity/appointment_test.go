package entity

import (
	"strings"
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusNoShow, true},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusConfirmed, false},
		{AppointmentStatusConfirmed, AppointmentStatusNoShow, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		{AppointmentStatusNoShow, AppointmentStatusConfirmed, false},
	}

	for _, tc := range cases {
		a := &Appointment{Status: tc.from}
		if got := a.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestIsOccupying(t *testing.T) {
	occupying := map[AppointmentStatus]bool{
		AppointmentStatusPending:   true,
		AppointmentStatusConfirmed: true,
		AppointmentStatusCompleted: false,
		AppointmentStatusCancelled: false,
		AppointmentStatusNoShow:    false,
	}
	for status, want := range occupying {
		a := &Appointment{Status: status}
		if a.IsOccupying() != want {
			t.Errorf("IsOccupying(%s) = %v, want %v", status, a.IsOccupying(), want)
		}
	}
}

func TestAppendObservation(t *testing.T) {
	a := &Appointment{}
	at := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	a.AppendObservation(at, "Patient contacted by reception")
	if a.Observations != "[15/01/2026 09:30] Patient contacted by reception" {
		t.Fatalf("unexpected observations: %q", a.Observations)
	}

	a.AppendObservation(at.Add(2*time.Hour), "Cancelled by the patient")
	lines := strings.Split(a.Observations, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 observation lines, got %d", len(lines))
	}
	if lines[1] != "[15/01/2026 11:30] Cancelled by the patient" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}
