package repository

import (
	"context"

	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkScheduleRepository interface {
	Create(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.WorkSchedule, error)
	// FindActiveByPractitionerAndWeekday returns only active blocks; inactive
	// rows never produce slots.
	FindActiveByPractitionerAndWeekday(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, weekday int) ([]entity.WorkSchedule, error)
	FindActiveByPractitioner(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID) ([]entity.WorkSchedule, error)
	Update(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error
	// Deactivate flips the active flag; returns affected rows so callers can
	// distinguish "not found" from success.
	Deactivate(ctx context.Context, db *gorm.DB, id int) (int64, error)
}
