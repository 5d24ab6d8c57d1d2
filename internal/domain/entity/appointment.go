package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the closed state set of the booking ledger.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// CancelActor tags who initiated a cancellation.
type CancelActor string

const (
	CancelledByClinic  CancelActor = "clinic"
	CancelledByPatient CancelActor = "patient"
)

// Appointment is the system of record for bookings. Rows are never deleted;
// cancellation is a status change so the contact log survives.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PractitionerID uuid.UUID         `gorm:"type:uuid;not null;index" json:"practitioner_id"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	SpecialtyID    uuid.UUID         `gorm:"type:uuid;not null" json:"specialty_id"`
	Date           time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time           string            `gorm:"type:time;not null" json:"time"`
	Motive         string            `gorm:"type:text" json:"motive,omitempty"`
	Status         AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	CancelledBy    *CancelActor      `gorm:"type:varchar(10)" json:"cancelled_by,omitempty"`
	Observations   string            `gorm:"type:text" json:"observations,omitempty"`
	RegisteredByID *uuid.UUID        `gorm:"type:uuid" json:"registered_by_id,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	ConfirmedAt    *time.Time        `json:"confirmed_at,omitempty"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Practitioner Practitioner `gorm:"foreignKey:PractitionerID" json:"practitioner,omitempty"`
	Patient      Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Specialty    Specialty    `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// OccupyingStatuses are the states that count against the one-appointment-per
// (practitioner, date, time) invariant.
var OccupyingStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
}

// IsOccupying reports whether the appointment holds its slot.
func (a *Appointment) IsOccupying() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}

// IsTerminal reports whether the appointment reached a final state.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo encodes the ledger state machine:
//
//	pending   -> confirmed | completed | cancelled | no_show
//	confirmed -> completed | cancelled
//
// Terminal states admit no transitions.
func (a *Appointment) CanTransitionTo(to AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusPending:
		switch to {
		case AppointmentStatusConfirmed, AppointmentStatusCompleted,
			AppointmentStatusCancelled, AppointmentStatusNoShow:
			return true
		}
	case AppointmentStatusConfirmed:
		switch to {
		case AppointmentStatusCompleted, AppointmentStatusCancelled:
			return true
		}
	}
	return false
}

// AppendObservation adds a timestamped line to the free-text contact log.
// This is a log append, not a state transition.
func (a *Appointment) AppendObservation(at time.Time, note string) {
	line := fmt.Sprintf("[%s] %s", at.Format("02/01/2006 15:04"), note)
	if a.Observations == "" {
		a.Observations = line
		return
	}
	a.Observations += "\n" + line
}
