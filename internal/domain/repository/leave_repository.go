package repository

import (
	"context"
	"time"

	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(ctx context.Context, db *gorm.DB, request *entity.LeaveRequest) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.LeaveRequest, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, status *entity.LeaveStatus) ([]entity.LeaveRequest, error)
	// FindApprovedVacationCovering returns the first approved vacation whose
	// inclusive date range contains the day, or nil.
	FindApprovedVacationCovering(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (*entity.LeaveRequest, error)
	// FindApprovedPermissionsOn returns approved permissions on that exact day.
	FindApprovedPermissionsOn(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) ([]entity.LeaveRequest, error)
	// FindApprovedOverlapping returns approved leave of the given kind whose
	// date range intersects [from, to] inclusive. Used to load a whole week in
	// one query when rendering the calendar.
	FindApprovedOverlapping(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind entity.LeaveKind, from, to time.Time) ([]entity.LeaveRequest, error)
	Update(ctx context.Context, db *gorm.DB, request *entity.LeaveRequest) error
}
