package usecase

import (
	"context"
	"errors"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound  = errors.New("work schedule not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange  = errors.New("end_time must be after start_time")
	ErrInvalidWeekday    = errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	ErrInvalidSlotSize   = errors.New("slot_minutes must be positive")
)

type WorkScheduleUsecase interface {
	Create(ctx context.Context, req *dto.CreateWorkScheduleRequest) (*dto.WorkScheduleResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateWorkScheduleRequest) (*dto.WorkScheduleResponse, error)
	Deactivate(ctx context.Context, id int) error
	ListByPractitioner(ctx context.Context, practitionerID uuid.UUID) (*dto.WorkScheduleListResponse, error)
}

type workScheduleUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	scheduleRepo       repository.WorkScheduleRepository
	practitionerRepo   repository.PractitionerRepository
	audit              service.AuditService
	transact           func(fn func(tx *gorm.DB) error) error
	defaultSlotMinutes int
}

func NewWorkScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.WorkScheduleRepository,
	practitionerRepo repository.PractitionerRepository,
	audit service.AuditService,
	defaultSlotMinutes int,
) WorkScheduleUsecase {
	return &workScheduleUsecase{
		db:                 db,
		log:                log,
		scheduleRepo:       scheduleRepo,
		practitionerRepo:   practitionerRepo,
		audit:              audit,
		transact: func(fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
		defaultSlotMinutes: defaultSlotMinutes,
	}
}

func (u *workScheduleUsecase) Create(ctx context.Context, req *dto.CreateWorkScheduleRequest) (*dto.WorkScheduleResponse, error) {
	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	startTime, endTime, err := normalizeClockRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	slotMinutes := req.SlotMinutes
	if slotMinutes == 0 {
		slotMinutes = u.defaultSlotMinutes
	}
	if slotMinutes < 0 {
		return nil, ErrInvalidSlotSize
	}

	practitioner, err := u.practitionerRepo.FindByID(ctx, u.db, req.PractitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %s: %+v", req.PractitionerID, err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	schedule := &entity.WorkSchedule{
		PractitionerID: req.PractitionerID,
		Weekday:        req.Weekday,
		StartTime:      startTime,
		EndTime:        endTime,
		SlotMinutes:    slotMinutes,
		Active:         true,
	}

	err = u.transact(func(tx *gorm.DB) error {
		if err := u.scheduleRepo.Create(ctx, tx, schedule); err != nil {
			return err
		}
		return u.audit.Record(ctx, tx, nil, entity.AuditActionScheduleCreate, entity.JSON{
			"schedule_id":     schedule.ID,
			"practitioner_id": req.PractitionerID.String(),
			"weekday":         req.Weekday,
		})
	})
	if err != nil {
		u.log.Warnf("Failed to create work schedule: %+v", err)
		return nil, err
	}

	return converter.WorkScheduleToResponse(schedule), nil
}

func (u *workScheduleUsecase) Update(ctx context.Context, id int, req *dto.UpdateWorkScheduleRequest) (*dto.WorkScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find work schedule %d: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if req.Weekday != nil {
		if *req.Weekday < 0 || *req.Weekday > 6 {
			return nil, ErrInvalidWeekday
		}
		schedule.Weekday = *req.Weekday
	}
	if req.StartTime != nil {
		normalized, err := entity.NormalizeClock(*req.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		schedule.StartTime = normalized
	}
	if req.EndTime != nil {
		normalized, err := entity.NormalizeClock(*req.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		schedule.EndTime = normalized
	}
	if req.SlotMinutes != nil {
		if *req.SlotMinutes <= 0 {
			return nil, ErrInvalidSlotSize
		}
		schedule.SlotMinutes = *req.SlotMinutes
	}
	if req.Active != nil {
		schedule.Active = *req.Active
	}

	startMin, _ := entity.ClockMinutes(schedule.StartTime)
	endMin, _ := entity.ClockMinutes(schedule.EndTime)
	if endMin <= startMin {
		return nil, ErrInvalidTimeRange
	}

	err = u.transact(func(tx *gorm.DB) error {
		if err := u.scheduleRepo.Update(ctx, tx, schedule); err != nil {
			return err
		}
		return u.audit.Record(ctx, tx, nil, entity.AuditActionScheduleUpdate, entity.JSON{
			"schedule_id": schedule.ID,
		})
	})
	if err != nil {
		u.log.Warnf("Failed to update work schedule %d: %+v", id, err)
		return nil, err
	}

	return converter.WorkScheduleToResponse(schedule), nil
}

func (u *workScheduleUsecase) Deactivate(ctx context.Context, id int) error {
	var affected int64
	err := u.transact(func(tx *gorm.DB) error {
		var err error
		affected, err = u.scheduleRepo.Deactivate(ctx, tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return nil
		}
		return u.audit.Record(ctx, tx, nil, entity.AuditActionScheduleDeactivate, entity.JSON{
			"schedule_id": id,
		})
	})
	if err != nil {
		u.log.Warnf("Failed to deactivate work schedule %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (u *workScheduleUsecase) ListByPractitioner(ctx context.Context, practitionerID uuid.UUID) (*dto.WorkScheduleListResponse, error) {
	practitioner, err := u.practitionerRepo.FindByID(ctx, u.db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %s: %+v", practitionerID, err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	schedules, err := u.scheduleRepo.FindActiveByPractitioner(ctx, u.db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to list work schedules for %s: %+v", practitionerID, err)
		return nil, err
	}

	return &dto.WorkScheduleListResponse{
		Schedules: converter.WorkSchedulesToResponses(schedules),
		Total:     len(schedules),
	}, nil
}

// normalizeClockRange validates both clock strings and enforces a non-empty
// forward range.
func normalizeClockRange(start, end string) (string, string, error) {
	normalizedStart, err := entity.NormalizeClock(start)
	if err != nil {
		return "", "", ErrInvalidTimeFormat
	}
	normalizedEnd, err := entity.NormalizeClock(end)
	if err != nil {
		return "", "", ErrInvalidTimeFormat
	}
	startMin, _ := entity.ClockMinutes(normalizedStart)
	endMin, _ := entity.ClockMinutes(normalizedEnd)
	if endMin <= startMin {
		return "", "", ErrInvalidTimeRange
	}
	return normalizedStart, normalizedEnd, nil
}
