package repository

import (
	"context"
	"time"

	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentFilter struct {
	Date           *time.Time
	PractitionerID *uuid.UUID
	Status         *entity.AppointmentStatus
}

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindOccupying returns the appointment holding (practitioner, date, time)
	// in an occupying status, or nil. excludeID skips the appointment's own
	// row during reschedule checks.
	FindOccupying(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, date time.Time, clock string, excludeID *uuid.UUID) (*entity.Appointment, error)
	// FindOccupyingBetween loads all occupying appointments for a practitioner
	// in [from, to] inclusive, for calendar rendering.
	FindOccupyingBetween(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	Find(ctx context.Context, db *gorm.DB, filter AppointmentFilter) ([]entity.Appointment, error)
	// FindPendingOn returns pending appointments on a day, ordered by time.
	// Feeds the "call tomorrow's patients" worklist.
	FindPendingOn(ctx context.Context, db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
}
