package usecase

import (
	"context"
	"io"
	"time"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// passthroughTx substitutes the database transaction wrapper in unit tests.
func passthroughTx(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func fixedNow() time.Time {
	// Thursday 2026-01-15 10:05.
	return time.Date(2026, 1, 15, 10, 5, 0, 0, time.UTC)
}

type fakePractitionerRepo struct {
	findByIDFn        func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Practitioner, error)
	findBySpecialtyFn func(ctx context.Context, db *gorm.DB, specialtyID uuid.UUID) ([]entity.Practitioner, error)
}

func (f *fakePractitionerRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Practitioner, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, db, id)
}

func (f *fakePractitionerRepo) FindBySpecialty(ctx context.Context, db *gorm.DB, specialtyID uuid.UUID) ([]entity.Practitioner, error) {
	if f.findBySpecialtyFn == nil {
		panic("FindBySpecialty not configured")
	}
	return f.findBySpecialtyFn(ctx, db, specialtyID)
}

type fakePatientRepo struct {
	findByIDFn func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
}

func (f *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, db, id)
}

type fakeSpecialtyRepo struct {
	findByIDFn func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialty, error)
}

func (f *fakeSpecialtyRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialty, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, db, id)
}

type fakeUserRepo struct {
	findByIDFn func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, db, id)
}

type fakeScheduleRepo struct {
	createFn              func(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error
	findByIDFn            func(ctx context.Context, db *gorm.DB, id int) (*entity.WorkSchedule, error)
	findActiveByWeekdayFn func(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, weekday int) ([]entity.WorkSchedule, error)
	findActiveFn          func(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID) ([]entity.WorkSchedule, error)
	updateFn              func(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error
	deactivateFn          func(ctx context.Context, db *gorm.DB, id int) (int64, error)
}

func (f *fakeScheduleRepo) Create(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, db, schedule)
}

func (f *fakeScheduleRepo) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.WorkSchedule, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, db, id)
}

func (f *fakeScheduleRepo) FindActiveByPractitionerAndWeekday(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, weekday int) ([]entity.WorkSchedule, error) {
	if f.findActiveByWeekdayFn == nil {
		panic("FindActiveByPractitionerAndWeekday not configured")
	}
	return f.findActiveByWeekdayFn(ctx, db, practitionerID, weekday)
}

func (f *fakeScheduleRepo) FindActiveByPractitioner(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID) ([]entity.WorkSchedule, error) {
	if f.findActiveFn == nil {
		panic("FindActiveByPractitioner not configured")
	}
	return f.findActiveFn(ctx, db, practitionerID)
}

func (f *fakeScheduleRepo) Update(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, db, schedule)
}

func (f *fakeScheduleRepo) Deactivate(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	if f.deactivateFn == nil {
		panic("Deactivate not configured")
	}
	return f.deactivateFn(ctx, db, id)
}

type fakeLeaveRepo struct {
	createFn                  func(ctx context.Context, db *gorm.DB, request *entity.LeaveRequest) error
	findByIDFn                func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.LeaveRequest, error)
	findByUserFn              func(ctx context.Context, db *gorm.DB, userID uuid.UUID, status *entity.LeaveStatus) ([]entity.LeaveRequest, error)
	findVacationCoveringFn    func(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (*entity.LeaveRequest, error)
	findPermissionsOnFn       func(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) ([]entity.LeaveRequest, error)
	findApprovedOverlappingFn func(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind entity.LeaveKind, from, to time.Time) ([]entity.LeaveRequest, error)
	updateFn                  func(ctx context.Context, db *gorm.DB, request *entity.LeaveRequest) error
}

func (f *fakeLeaveRepo) Create(ctx context.Context, db *gorm.DB, request *entity.LeaveRequest) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, db, request)
}

func (f *fakeLeaveRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.LeaveRequest, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, db, id)
}

func (f *fakeLeaveRepo) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, status *entity.LeaveStatus) ([]entity.LeaveRequest, error) {
	if f.findByUserFn == nil {
		panic("FindByUser not configured")
	}
	return f.findByUserFn(ctx, db, userID, status)
}

func (f *fakeLeaveRepo) FindApprovedVacationCovering(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (*entity.LeaveRequest, error) {
	if f.findVacationCoveringFn == nil {
		panic("FindApprovedVacationCovering not configured")
	}
	return f.findVacationCoveringFn(ctx, db, userID, date)
}

func (f *fakeLeaveRepo) FindApprovedPermissionsOn(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) ([]entity.LeaveRequest, error) {
	if f.findPermissionsOnFn == nil {
		panic("FindApprovedPermissionsOn not configured")
	}
	return f.findPermissionsOnFn(ctx, db, userID, date)
}

func (f *fakeLeaveRepo) FindApprovedOverlapping(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind entity.LeaveKind, from, to time.Time) ([]entity.LeaveRequest, error) {
	if f.findApprovedOverlappingFn == nil {
		panic("FindApprovedOverlapping not configured")
	}
	return f.findApprovedOverlappingFn(ctx, db, userID, kind, from, to)
}

func (f *fakeLeaveRepo) Update(ctx context.Context, db *gorm.DB, request *entity.LeaveRequest) error {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, db, request)
}

type fakeAppointmentRepo struct {
	createFn               func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	findByIDFn             func(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	findOccupyingFn        func(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, date time.Time, clock string, excludeID *uuid.UUID) (*entity.Appointment, error)
	findOccupyingBetweenFn func(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	findFn                 func(ctx context.Context, db *gorm.DB, filter repository.AppointmentFilter) ([]entity.Appointment, error)
	findPendingOnFn        func(ctx context.Context, db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	updateFn               func(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, db, appointment)
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	if f.findByIDFn == nil {
		panic("FindByID not configured")
	}
	return f.findByIDFn(ctx, db, id)
}

func (f *fakeAppointmentRepo) FindOccupying(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, date time.Time, clock string, excludeID *uuid.UUID) (*entity.Appointment, error) {
	if f.findOccupyingFn == nil {
		panic("FindOccupying not configured")
	}
	return f.findOccupyingFn(ctx, db, practitionerID, date, clock, excludeID)
}

func (f *fakeAppointmentRepo) FindOccupyingBetween(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	if f.findOccupyingBetweenFn == nil {
		panic("FindOccupyingBetween not configured")
	}
	return f.findOccupyingBetweenFn(ctx, db, practitionerID, from, to)
}

func (f *fakeAppointmentRepo) Find(ctx context.Context, db *gorm.DB, filter repository.AppointmentFilter) ([]entity.Appointment, error) {
	if f.findFn == nil {
		panic("Find not configured")
	}
	return f.findFn(ctx, db, filter)
}

func (f *fakeAppointmentRepo) FindPendingOn(ctx context.Context, db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	if f.findPendingOnFn == nil {
		panic("FindPendingOn not configured")
	}
	return f.findPendingOnFn(ctx, db, date)
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, db, appointment)
}

// fakeAudit records actions in order and never fails.
type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	f.actions = append(f.actions, action)
	return nil
}

// fakeLocker runs the callback immediately, optionally simulating contention.
type fakeLocker struct {
	err   error
	calls int
}

func (f *fakeLocker) WithPractitionerLock(ctx context.Context, practitionerID uuid.UUID, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

// fakeLeaveChecker stubs the leave registry for booking and availability
// tests; only CheckPractitioner is expected to run.
type fakeLeaveChecker struct {
	checkFn func(ctx context.Context, practitionerID uuid.UUID, date time.Time, timeRange *ClockRange) (bool, string, error)
}

func (f *fakeLeaveChecker) CheckPractitioner(ctx context.Context, practitionerID uuid.UUID, date time.Time, timeRange *ClockRange) (bool, string, error) {
	if f.checkFn == nil {
		return false, "", nil
	}
	return f.checkFn(ctx, practitionerID, date, timeRange)
}

func (f *fakeLeaveChecker) RequestVacation(ctx context.Context, req *dto.RequestVacationRequest) (*dto.LeaveResponse, error) {
	panic("RequestVacation not configured")
}

func (f *fakeLeaveChecker) RequestPermission(ctx context.Context, req *dto.RequestPermissionRequest) (*dto.LeaveResponse, error) {
	panic("RequestPermission not configured")
}

func (f *fakeLeaveChecker) Approve(ctx context.Context, id uuid.UUID, req *dto.ResolveLeaveRequest) (*dto.LeaveResponse, error) {
	panic("Approve not configured")
}

func (f *fakeLeaveChecker) Reject(ctx context.Context, id uuid.UUID, req *dto.ResolveLeaveRequest) (*dto.LeaveResponse, error) {
	panic("Reject not configured")
}

func (f *fakeLeaveChecker) ListByUser(ctx context.Context, userID uuid.UUID, status string) (*dto.LeaveListResponse, error) {
	panic("ListByUser not configured")
}
