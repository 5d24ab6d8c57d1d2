package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	PractitionerID uuid.UUID  `json:"practitioner_id" validate:"required"`
	PatientID      uuid.UUID  `json:"patient_id" validate:"required"`
	SpecialtyID    uuid.UUID  `json:"specialty_id" validate:"required"`
	Date           string     `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time           string     `json:"time" validate:"required"` // Format: HH:MM
	Motive         string     `json:"motive" validate:"max=500"`
	RegisteredByID *uuid.UUID `json:"registered_by_id" validate:"omitempty"`
}

type RescheduleAppointmentRequest struct {
	Date   string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time   string `json:"time" validate:"required"` // Format: HH:MM
	Motive string `json:"motive" validate:"omitempty,max=500"`
}

type CancelAppointmentRequest struct {
	CancelledBy string `json:"cancelled_by" validate:"omitempty,oneof=clinic patient"`
	Reason      string `json:"reason" validate:"omitempty,max=500"`
}

type ContactNoteRequest struct {
	ContactedBy string `json:"contacted_by" validate:"required,max=100"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID            `json:"id"`
	PractitionerID uuid.UUID            `json:"practitioner_id"`
	Practitioner   *PractitionerSummary `json:"practitioner,omitempty"`
	PatientID      uuid.UUID            `json:"patient_id"`
	PatientName    string               `json:"patient_name,omitempty"`
	SpecialtyID    uuid.UUID            `json:"specialty_id"`
	SpecialtyName  string               `json:"specialty_name,omitempty"`
	Date           string               `json:"date"`
	Time           string               `json:"time"`
	Motive         string               `json:"motive,omitempty"`
	Status         string               `json:"status"`
	CancelledBy    string               `json:"cancelled_by,omitempty"`
	Observations   string               `json:"observations,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	ConfirmedAt    *time.Time           `json:"confirmed_at,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
