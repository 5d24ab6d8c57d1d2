package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrLeaveAlreadyResolved = errors.New("leave request is already resolved")
	ErrUserNotFound         = errors.New("user not found")
	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrInvalidLeaveRange    = errors.New("end date must not be before start date")
	ErrPermissionTimeRange  = errors.New("start_time and end_time must be provided together")
)

// UnavailabilityError signals that a practitioner is on approved leave for the
// requested window. Reason is the human-readable explanation composed here; it
// is empty when availability could not be verified at all.
type UnavailabilityError struct {
	Reason string
}

func (e *UnavailabilityError) Error() string {
	if e.Reason == "" {
		return "practitioner availability cannot be verified"
	}
	return e.Reason
}

// ClockRange is a half-open [StartMin, EndMin) window in minutes since
// midnight.
type ClockRange struct {
	StartMin int
	EndMin   int
}

type LeaveUsecase interface {
	RequestVacation(ctx context.Context, req *dto.RequestVacationRequest) (*dto.LeaveResponse, error)
	RequestPermission(ctx context.Context, req *dto.RequestPermissionRequest) (*dto.LeaveResponse, error)
	Approve(ctx context.Context, id uuid.UUID, req *dto.ResolveLeaveRequest) (*dto.LeaveResponse, error)
	Reject(ctx context.Context, id uuid.UUID, req *dto.ResolveLeaveRequest) (*dto.LeaveResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status string) (*dto.LeaveListResponse, error)
	// CheckPractitioner reports whether approved leave makes the practitioner
	// unavailable on the given day, optionally against a specific time window.
	CheckPractitioner(ctx context.Context, practitionerID uuid.UUID, date time.Time, timeRange *ClockRange) (bool, string, error)
}

type leaveUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	leaveRepo        repository.LeaveRepository
	practitionerRepo repository.PractitionerRepository
	userRepo         repository.UserRepository
	audit            service.AuditService
	transact         func(fn func(tx *gorm.DB) error) error
	now              func() time.Time
}

func NewLeaveUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	leaveRepo repository.LeaveRepository,
	practitionerRepo repository.PractitionerRepository,
	userRepo repository.UserRepository,
	audit service.AuditService,
) LeaveUsecase {
	return &leaveUsecase{
		db:               db,
		log:              log,
		leaveRepo:        leaveRepo,
		practitionerRepo: practitionerRepo,
		userRepo:         userRepo,
		audit:            audit,
		transact: func(fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
		now: time.Now,
	}
}

func (u *leaveUsecase) RequestVacation(ctx context.Context, req *dto.RequestVacationRequest) (*dto.LeaveResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidLeaveRange
	}

	user, err := u.userRepo.FindByID(ctx, u.db, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", req.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	request := &entity.LeaveRequest{
		UserID:    req.UserID,
		Kind:      entity.LeaveKindVacation,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    entity.LeaveStatusPending,
		Motive:    req.Motive,
	}

	err = u.transact(func(tx *gorm.DB) error {
		if err := u.leaveRepo.Create(ctx, tx, request); err != nil {
			return err
		}
		return u.audit.Record(ctx, tx, &req.UserID, entity.AuditActionLeaveRequest, entity.JSON{
			"leave_id": request.ID.String(),
			"kind":     string(entity.LeaveKindVacation),
			"from":     req.StartDate,
			"to":       req.EndDate,
		})
	})
	if err != nil {
		u.log.Warnf("Failed to create vacation request: %+v", err)
		return nil, err
	}

	return converter.LeaveToResponse(request), nil
}

func (u *leaveUsecase) RequestPermission(ctx context.Context, req *dto.RequestPermissionRequest) (*dto.LeaveResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	// Half permissions are not a thing: either both endpoints or a full day.
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, ErrPermissionTimeRange
	}

	var startTime, endTime *string
	if req.StartTime != nil {
		start, err := entity.NormalizeClock(*req.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		end, err := entity.NormalizeClock(*req.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		startMin, _ := entity.ClockMinutes(start)
		endMin, _ := entity.ClockMinutes(end)
		if endMin <= startMin {
			return nil, ErrInvalidTimeRange
		}
		startTime, endTime = &start, &end
	}

	user, err := u.userRepo.FindByID(ctx, u.db, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", req.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	request := &entity.LeaveRequest{
		UserID:    req.UserID,
		Kind:      entity.LeaveKindPermission,
		StartDate: date,
		EndDate:   date,
		StartTime: startTime,
		EndTime:   endTime,
		Status:    entity.LeaveStatusPending,
		Motive:    req.Motive,
	}

	err = u.transact(func(tx *gorm.DB) error {
		if err := u.leaveRepo.Create(ctx, tx, request); err != nil {
			return err
		}
		return u.audit.Record(ctx, tx, &req.UserID, entity.AuditActionLeaveRequest, entity.JSON{
			"leave_id": request.ID.String(),
			"kind":     string(entity.LeaveKindPermission),
			"date":     req.Date,
		})
	})
	if err != nil {
		u.log.Warnf("Failed to create permission request: %+v", err)
		return nil, err
	}

	return converter.LeaveToResponse(request), nil
}

func (u *leaveUsecase) Approve(ctx context.Context, id uuid.UUID, req *dto.ResolveLeaveRequest) (*dto.LeaveResponse, error) {
	return u.resolve(ctx, id, req, entity.LeaveStatusApproved, entity.AuditActionLeaveApprove)
}

func (u *leaveUsecase) Reject(ctx context.Context, id uuid.UUID, req *dto.ResolveLeaveRequest) (*dto.LeaveResponse, error) {
	return u.resolve(ctx, id, req, entity.LeaveStatusRejected, entity.AuditActionLeaveReject)
}

func (u *leaveUsecase) resolve(ctx context.Context, id uuid.UUID, req *dto.ResolveLeaveRequest, status entity.LeaveStatus, action string) (*dto.LeaveResponse, error) {
	request, err := u.leaveRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find leave request %s: %+v", id, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrLeaveNotFound
	}
	if !request.IsPending() {
		return nil, ErrLeaveAlreadyResolved
	}

	approver, err := u.userRepo.FindByID(ctx, u.db, req.ApproverID)
	if err != nil {
		u.log.Warnf("Failed to find approver %s: %+v", req.ApproverID, err)
		return nil, err
	}
	if approver == nil {
		return nil, ErrUserNotFound
	}

	resolvedAt := u.now()
	request.Status = status
	request.ApprovedByID = &req.ApproverID
	request.ResolvedAt = &resolvedAt
	if req.Observations != "" {
		request.Observations = req.Observations
	}

	err = u.transact(func(tx *gorm.DB) error {
		if err := u.leaveRepo.Update(ctx, tx, request); err != nil {
			return err
		}
		return u.audit.Record(ctx, tx, &req.ApproverID, action, entity.JSON{
			"leave_id": request.ID.String(),
			"kind":     string(request.Kind),
			"user_id":  request.UserID.String(),
		})
	})
	if err != nil {
		u.log.Warnf("Failed to resolve leave request %s: %+v", id, err)
		return nil, err
	}

	return converter.LeaveToResponse(request), nil
}

func (u *leaveUsecase) ListByUser(ctx context.Context, userID uuid.UUID, status string) (*dto.LeaveListResponse, error) {
	var statusFilter *entity.LeaveStatus
	if status != "" {
		s := entity.LeaveStatus(status)
		statusFilter = &s
	}

	requests, err := u.leaveRepo.FindByUser(ctx, u.db, userID, statusFilter)
	if err != nil {
		u.log.Warnf("Failed to list leave for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.LeaveListResponse{
		Requests: converter.LeavesToResponses(requests),
		Total:    len(requests),
	}, nil
}

// CheckPractitioner resolves the practitioner's staff account and walks the
// leave records keyed by it. Vacations take precedence over permissions; the
// first qualifying reason wins.
func (u *leaveUsecase) CheckPractitioner(ctx context.Context, practitionerID uuid.UUID, date time.Time, timeRange *ClockRange) (bool, string, error) {
	practitioner, err := u.practitionerRepo.FindByID(ctx, u.db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %s: %+v", practitionerID, err)
		return false, "", err
	}
	if practitioner == nil {
		return false, "", ErrPractitionerNotFound
	}
	if practitioner.UserID == nil {
		// No linked staff account means leave records cannot be consulted.
		// Fail closed: block the window rather than book against unknown
		// state.
		u.log.Warnf("Practitioner %s has no linked user account; treating as unavailable", practitionerID)
		return true, "", nil
	}
	userID := *practitioner.UserID

	vacation, err := u.leaveRepo.FindApprovedVacationCovering(ctx, u.db, userID, entity.DateOnly(date))
	if err != nil {
		return false, "", err
	}
	if vacation != nil {
		reason := fmt.Sprintf("On vacation from %s to %s",
			vacation.StartDate.Format("02/01"), vacation.EndDate.Format("02/01"))
		return true, reason, nil
	}

	permissions, err := u.leaveRepo.FindApprovedPermissionsOn(ctx, u.db, userID, entity.DateOnly(date))
	if err != nil {
		return false, "", err
	}

	for i := range permissions {
		permission := &permissions[i]

		if permission.IsFullDay() {
			return true, "Full-day permission", nil
		}

		reason := fmt.Sprintf("On permission from %s to %s",
			clockLabel(*permission.StartTime), clockLabel(*permission.EndTime))

		if timeRange == nil {
			// No specific window to test, but a timed permission exists on the
			// day; report unavailable rather than guess.
			return true, reason, nil
		}
		if permission.OverlapsClockRange(timeRange.StartMin, timeRange.EndMin) {
			return true, reason, nil
		}
	}

	return false, "", nil
}

func clockLabel(value string) string {
	normalized, err := entity.NormalizeClock(value)
	if err != nil {
		return value
	}
	return normalized
}
