package dto

import (
	"github.com/google/uuid"

	"clinic-scheduler/internal/domain/entity"
)

// Response DTOs

type PractitionerSummary struct {
	ID                 uuid.UUID `json:"id"`
	FullName           string    `json:"full_name"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
}

type DayAvailability struct {
	Date     string        `json:"date"` // YYYY-MM-DD
	DayLabel string        `json:"day_label"`
	Working  bool          `json:"working"`
	OnLeave  bool          `json:"on_leave"`
	IsPast   bool          `json:"is_past"`
	Slots    []entity.Slot `json:"slots"`
}

type WeeklyCalendarResponse struct {
	Practitioner PractitionerSummary `json:"practitioner"`
	WeekStart    string              `json:"week_start"`
	WeekEnd      string              `json:"week_end"`
	Period       string              `json:"period"`
	Days         []DayAvailability   `json:"days"`
}

type FreeSlotsResponse struct {
	PractitionerID uuid.UUID `json:"practitioner_id"`
	Date           string    `json:"date"`
	Slots          []string  `json:"slots"`
	Total          int       `json:"total"`
}

type UnavailablePractitioner struct {
	PractitionerSummary
	Reason string `json:"reason"`
}

type PractitionersAvailabilityResponse struct {
	SpecialtyID uuid.UUID                 `json:"specialty_id"`
	Date        string                    `json:"date"`
	Available   []PractitionerSummary     `json:"available"`
	Unavailable []UnavailablePractitioner `json:"unavailable"`
}
