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
	"clinic-scheduler/internal/infrastructure/cache"
	"clinic-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrSlotTaken            = errors.New("slot is already taken for this practitioner")
	ErrPractitionerBusy     = errors.New("practitioner is being booked by another request, please retry")
	ErrPastDate             = errors.New("date must not be in the past")
	ErrInvalidTransition    = errors.New("appointment status does not allow this operation")
	ErrPractitionerInactive = errors.New("practitioner is not active")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientInactive      = errors.New("patient is not active")
)

type BookingUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	Complete(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	MarkContacted(ctx context.Context, id uuid.UUID, req *dto.ContactNoteRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, date, practitionerID, status string) (*dto.AppointmentListResponse, error)
	// ListToConfirm returns tomorrow's pending appointments, the daily call
	// list for confirming attendance.
	ListToConfirm(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type bookingUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	appointmentRepo    repository.AppointmentRepository
	practitionerRepo   repository.PractitionerRepository
	patientRepo        repository.PatientRepository
	specialtyRepo      repository.SpecialtyRepository
	scheduleRepo       repository.WorkScheduleRepository
	leaves             LeaveUsecase
	locker             cache.PractitionerLocker
	audit              service.AuditService
	transact           func(fn func(tx *gorm.DB) error) error
	defaultSlotMinutes int
	now                func() time.Time
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	practitionerRepo repository.PractitionerRepository,
	patientRepo repository.PatientRepository,
	specialtyRepo repository.SpecialtyRepository,
	scheduleRepo repository.WorkScheduleRepository,
	leaves LeaveUsecase,
	locker cache.PractitionerLocker,
	audit service.AuditService,
	defaultSlotMinutes int,
) BookingUsecase {
	return &bookingUsecase{
		db:                 db,
		log:                log,
		appointmentRepo:    appointmentRepo,
		practitionerRepo:   practitionerRepo,
		patientRepo:        patientRepo,
		specialtyRepo:      specialtyRepo,
		scheduleRepo:       scheduleRepo,
		leaves:             leaves,
		locker:             locker,
		audit:              audit,
		transact: func(fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
		defaultSlotMinutes: defaultSlotMinutes,
		now:                time.Now,
	}
}

func (u *bookingUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, clock, err := u.parseSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	practitioner, err := u.practitionerRepo.FindByID(ctx, u.db, req.PractitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %s: %+v", req.PractitionerID, err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}
	if !practitioner.Active {
		return nil, ErrPractitionerInactive
	}

	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if !patient.Active {
		return nil, ErrPatientInactive
	}

	specialty, err := u.specialtyRepo.FindByID(ctx, u.db, req.SpecialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty %s: %+v", req.SpecialtyID, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	if err := u.checkLeave(ctx, req.PractitionerID, date, clock); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PractitionerID: req.PractitionerID,
		PatientID:      req.PatientID,
		SpecialtyID:    req.SpecialtyID,
		Date:           date,
		Time:           clock,
		Motive:         req.Motive,
		Status:         entity.AppointmentStatusPending,
		RegisteredByID: req.RegisteredByID,
	}

	err = u.locker.WithPractitionerLock(ctx, req.PractitionerID, func(ctx context.Context) error {
		return u.transact(func(tx *gorm.DB) error {
			existing, err := u.appointmentRepo.FindOccupying(ctx, tx, req.PractitionerID, date, clock, nil)
			if err != nil {
				return err
			}
			if existing != nil {
				return ErrSlotTaken
			}
			if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
				return err
			}
			return u.audit.Record(ctx, tx, req.RegisteredByID, entity.AuditActionAppointmentBook, entity.JSON{
				"appointment_id":  appointment.ID.String(),
				"practitioner_id": req.PractitionerID.String(),
				"date":            req.Date,
				"time":            clock,
			})
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, cache.ErrLockNotAcquired):
			return nil, ErrPractitionerBusy
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// The partial unique index caught a race the lock did not cover.
			return nil, ErrSlotTaken
		case errors.Is(err, ErrSlotTaken):
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to book appointment: %+v", err)
		return nil, err
	}

	return u.reload(ctx, appointment.ID)
}

func (u *bookingUsecase) Confirm(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.CanTransitionTo(entity.AppointmentStatusConfirmed) {
		return nil, ErrInvalidTransition
	}

	confirmedAt := u.now()
	appointment.Status = entity.AppointmentStatusConfirmed
	appointment.ConfirmedAt = &confirmedAt

	if err := u.persist(ctx, appointment, entity.AuditActionAppointmentConfirm, nil); err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) Cancel(ctx context.Context, id uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.CanTransitionTo(entity.AppointmentStatusCancelled) {
		return nil, ErrInvalidTransition
	}

	actor := entity.CancelledByClinic
	if req.CancelledBy == string(entity.CancelledByPatient) {
		actor = entity.CancelledByPatient
	}
	reason := req.Reason
	if reason == "" {
		if actor == entity.CancelledByPatient {
			reason = "Cancelled by the patient"
		} else {
			reason = "Appointment cancelled"
		}
	}

	appointment.Status = entity.AppointmentStatusCancelled
	appointment.CancelledBy = &actor
	appointment.AppendObservation(u.now(), reason)

	if err := u.persist(ctx, appointment, entity.AuditActionAppointmentCancel, entity.JSON{
		"cancelled_by": string(actor),
	}); err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) Reschedule(ctx context.Context, id uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.IsOccupying() {
		return nil, ErrInvalidTransition
	}

	date, clock, err := u.parseSlot(req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	if err := u.checkLeave(ctx, appointment.PractitionerID, date, clock); err != nil {
		return nil, err
	}

	previousDate := appointment.Date.Format("2006-01-02")
	previousTime := appointment.Time

	err = u.locker.WithPractitionerLock(ctx, appointment.PractitionerID, func(ctx context.Context) error {
		return u.transact(func(tx *gorm.DB) error {
			existing, err := u.appointmentRepo.FindOccupying(ctx, tx, appointment.PractitionerID, date, clock, &appointment.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				return ErrSlotTaken
			}

			appointment.Date = date
			appointment.Time = clock
			if req.Motive != "" {
				appointment.Motive = req.Motive
			}
			if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
				return err
			}
			return u.audit.Record(ctx, tx, nil, entity.AuditActionAppointmentReschedule, entity.JSON{
				"appointment_id": appointment.ID.String(),
				"from":           fmt.Sprintf("%s %s", previousDate, previousTime),
				"to":             fmt.Sprintf("%s %s", req.Date, clock),
			})
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, cache.ErrLockNotAcquired):
			return nil, ErrPractitionerBusy
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrSlotTaken
		case errors.Is(err, ErrSlotTaken):
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to reschedule appointment %s: %+v", id, err)
		return nil, err
	}

	return u.reload(ctx, appointment.ID)
}

func (u *bookingUsecase) Complete(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.CanTransitionTo(entity.AppointmentStatusCompleted) {
		return nil, ErrInvalidTransition
	}

	appointment.Status = entity.AppointmentStatusCompleted
	if err := u.persist(ctx, appointment, entity.AuditActionAppointmentComplete, nil); err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) MarkNoShow(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.CanTransitionTo(entity.AppointmentStatusNoShow) {
		return nil, ErrInvalidTransition
	}

	appointment.Status = entity.AppointmentStatusNoShow
	if err := u.persist(ctx, appointment, entity.AuditActionAppointmentNoShow, nil); err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) MarkContacted(ctx context.Context, id uuid.UUID, req *dto.ContactNoteRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.AppendObservation(u.now(), fmt.Sprintf("Patient contacted by %s", req.ContactedBy))
	if err := u.persist(ctx, appointment, entity.AuditActionAppointmentContacted, entity.JSON{
		"contacted_by": req.ContactedBy,
	}); err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) List(ctx context.Context, date, practitionerID, status string) (*dto.AppointmentListResponse, error) {
	var filter repository.AppointmentFilter

	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		filter.Date = &parsed
	}
	if practitionerID != "" {
		parsed, err := uuid.Parse(practitionerID)
		if err != nil {
			return nil, ErrPractitionerNotFound
		}
		filter.PractitionerID = &parsed
	}
	if status != "" {
		s := entity.AppointmentStatus(status)
		filter.Status = &s
	}

	appointments, err := u.appointmentRepo.Find(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *bookingUsecase) ListToConfirm(ctx context.Context) (*dto.AppointmentListResponse, error) {
	tomorrow := entity.DateOnly(u.now()).AddDate(0, 0, 1)

	appointments, err := u.appointmentRepo.FindPendingOn(ctx, u.db, tomorrow)
	if err != nil {
		u.log.Warnf("Failed to list appointments to confirm: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *bookingUsecase) parseSlot(dateValue, timeValue string) (time.Time, string, error) {
	date, err := time.Parse("2006-01-02", dateValue)
	if err != nil {
		return time.Time{}, "", ErrInvalidDateFormat
	}
	clock, err := entity.NormalizeClock(timeValue)
	if err != nil {
		return time.Time{}, "", ErrInvalidTimeFormat
	}
	if date.Before(entity.DateOnly(u.now())) {
		return time.Time{}, "", ErrPastDate
	}
	return date, clock, nil
}

// checkLeave blocks the slot's full [start, start+duration) window against the
// practitioner's approved leave. Duration comes from the covering schedule
// block, falling back to the configured default when the slot lies outside
// every block.
func (u *bookingUsecase) checkLeave(ctx context.Context, practitionerID uuid.UUID, date time.Time, clock string) error {
	duration := u.defaultSlotMinutes
	blocks, err := u.scheduleRepo.FindActiveByPractitionerAndWeekday(ctx, u.db, practitionerID, entity.WeekdayIndex(date))
	if err != nil {
		return err
	}
	for i := range blocks {
		if blocks[i].Covers(clock) {
			duration = blocks[i].SlotMinutes
			break
		}
	}

	startMin, err := entity.ClockMinutes(clock)
	if err != nil {
		return ErrInvalidTimeFormat
	}

	unavailable, reason, err := u.leaves.CheckPractitioner(ctx, practitionerID, date, &ClockRange{
		StartMin: startMin,
		EndMin:   startMin + duration,
	})
	if err != nil {
		return err
	}
	if unavailable {
		return &UnavailabilityError{Reason: reason}
	}
	return nil
}

func (u *bookingUsecase) findAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (u *bookingUsecase) persist(ctx context.Context, appointment *entity.Appointment, action string, extra entity.JSON) error {
	metadata := entity.JSON{
		"appointment_id": appointment.ID.String(),
		"status":         string(appointment.Status),
	}
	for k, v := range extra {
		metadata[k] = v
	}

	err := u.transact(func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
			return err
		}
		return u.audit.Record(ctx, tx, nil, action, metadata)
	})
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", appointment.ID, err)
		return err
	}
	return nil
}

func (u *bookingUsecase) reload(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}
