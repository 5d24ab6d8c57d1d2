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

var ErrSpecialtyNotFound = errors.New("specialty not found")

var dayAbbreviations = [7]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

type AvailabilityUsecase interface {
	// WeeklyCalendar renders the Monday-anchored week containing anchorDate
	// (today when empty) for one practitioner.
	WeeklyCalendar(ctx context.Context, practitionerID uuid.UUID, anchorDate string) (*dto.WeeklyCalendarResponse, error)
	FreeSlotsForDate(ctx context.Context, practitionerID uuid.UUID, date string) (*dto.FreeSlotsResponse, error)
	// PractitionersAvailable splits a specialty's active practitioners into
	// available and on-leave for a given day.
	PractitionersAvailable(ctx context.Context, specialtyID uuid.UUID, date string) (*dto.PractitionersAvailabilityResponse, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	practitionerRepo repository.PractitionerRepository
	specialtyRepo    repository.SpecialtyRepository
	scheduleRepo     repository.WorkScheduleRepository
	leaveRepo        repository.LeaveRepository
	appointmentRepo  repository.AppointmentRepository
	leaves           LeaveUsecase
	cache            *service.AvailabilityCache
	now              func() time.Time
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practitionerRepo repository.PractitionerRepository,
	specialtyRepo repository.SpecialtyRepository,
	scheduleRepo repository.WorkScheduleRepository,
	leaveRepo repository.LeaveRepository,
	appointmentRepo repository.AppointmentRepository,
	leaves LeaveUsecase,
	cache *service.AvailabilityCache,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		practitionerRepo: practitionerRepo,
		specialtyRepo:    specialtyRepo,
		scheduleRepo:     scheduleRepo,
		leaveRepo:        leaveRepo,
		appointmentRepo:  appointmentRepo,
		leaves:           leaves,
		cache:            cache,
		now:              time.Now,
	}
}

func (u *availabilityUsecase) WeeklyCalendar(ctx context.Context, practitionerID uuid.UUID, anchorDate string) (*dto.WeeklyCalendarResponse, error) {
	now := u.now()

	anchor := entity.DateOnly(now)
	if anchorDate != "" {
		parsed, err := time.Parse("2006-01-02", anchorDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		anchor = parsed
	}
	weekStart := entity.StartOfWeek(anchor)
	weekEnd := weekStart.AddDate(0, 0, 6)

	practitioner, err := u.practitionerRepo.FindByID(ctx, u.db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %s: %+v", practitionerID, err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	if u.cache != nil {
		if calendar, ok := u.cache.GetWeeklyCalendar(ctx, practitionerID, weekStart); ok {
			return calendar, nil
		}
	}

	schedules, err := u.scheduleRepo.FindActiveByPractitioner(ctx, u.db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to load work schedules for %s: %+v", practitionerID, err)
		return nil, err
	}
	blocksByWeekday := make(map[int][]entity.WorkSchedule)
	for _, schedule := range schedules {
		blocksByWeekday[schedule.Weekday] = append(blocksByWeekday[schedule.Weekday], schedule)
	}

	var vacations, permissions []entity.LeaveRequest
	if practitioner.UserID != nil {
		vacations, err = u.leaveRepo.FindApprovedOverlapping(ctx, u.db, *practitioner.UserID, entity.LeaveKindVacation, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
		permissions, err = u.leaveRepo.FindApprovedOverlapping(ctx, u.db, *practitioner.UserID, entity.LeaveKindPermission, weekStart, weekEnd)
		if err != nil {
			return nil, err
		}
	} else {
		u.log.Warnf("Practitioner %s has no linked user account; calendar rendered without leave data", practitionerID)
	}

	appointments, err := u.appointmentRepo.FindOccupyingBetween(ctx, u.db, practitionerID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	occupied := occupiedIndex(appointments)

	today := entity.DateOnly(now)
	nowMin := now.Hour()*60 + now.Minute()

	days := make([]dto.DayAvailability, 0, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		day := dto.DayAvailability{
			Date:     date.Format("2006-01-02"),
			DayLabel: fmt.Sprintf("%s %d", dayAbbreviations[i], date.Day()),
			Working:  len(blocksByWeekday[i]) > 0,
			IsPast:   date.Before(today),
			Slots:    []entity.Slot{},
		}

		for _, vacation := range vacations {
			if vacation.CoversDate(date) {
				day.OnLeave = true
				break
			}
		}

		if day.Working && !day.OnLeave {
			day.Slots = daySlots(
				blocksByWeekday[i],
				leaveOnDate(permissions, date),
				occupied[day.Date],
				day.IsPast,
				entity.SameDate(date, today),
				nowMin,
			)
		}

		days = append(days, day)
	}

	calendar := &dto.WeeklyCalendarResponse{
		Practitioner: *converter.PractitionerToSummary(practitioner),
		WeekStart:    weekStart.Format("2006-01-02"),
		WeekEnd:      weekEnd.Format("2006-01-02"),
		Period:       periodLabel(weekStart, weekEnd),
		Days:         days,
	}

	if u.cache != nil {
		u.cache.SetWeeklyCalendar(ctx, practitionerID, weekStart, calendar)
	}
	return calendar, nil
}

func (u *availabilityUsecase) FreeSlotsForDate(ctx context.Context, practitionerID uuid.UUID, date string) (*dto.FreeSlotsResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	practitioner, err := u.practitionerRepo.FindByID(ctx, u.db, practitionerID)
	if err != nil {
		u.log.Warnf("Failed to find practitioner %s: %+v", practitionerID, err)
		return nil, err
	}
	if practitioner == nil {
		return nil, ErrPractitionerNotFound
	}

	response := &dto.FreeSlotsResponse{
		PractitionerID: practitionerID,
		Date:           day.Format("2006-01-02"),
		Slots:          []string{},
	}

	blocks, err := u.scheduleRepo.FindActiveByPractitionerAndWeekday(ctx, u.db, practitionerID, entity.WeekdayIndex(day))
	if err != nil {
		u.log.Warnf("Failed to load work schedules for %s: %+v", practitionerID, err)
		return nil, err
	}
	if len(blocks) == 0 {
		return response, nil
	}

	var permissions []entity.LeaveRequest
	if practitioner.UserID != nil {
		vacation, err := u.leaveRepo.FindApprovedVacationCovering(ctx, u.db, *practitioner.UserID, entity.DateOnly(day))
		if err != nil {
			return nil, err
		}
		if vacation != nil {
			return response, nil
		}
		permissions, err = u.leaveRepo.FindApprovedPermissionsOn(ctx, u.db, *practitioner.UserID, entity.DateOnly(day))
		if err != nil {
			return nil, err
		}
	}

	appointments, err := u.appointmentRepo.FindOccupyingBetween(ctx, u.db, practitionerID, entity.DateOnly(day), entity.DateOnly(day))
	if err != nil {
		return nil, err
	}
	occupied := occupiedIndex(appointments)

	now := u.now()
	today := entity.DateOnly(now)
	slots := daySlots(
		blocks,
		permissions,
		occupied[day.Format("2006-01-02")],
		day.Before(today),
		entity.SameDate(day, today),
		now.Hour()*60+now.Minute(),
	)
	for _, slot := range slots {
		if slot.Status == entity.SlotStatusAvailable {
			response.Slots = append(response.Slots, slot.Time)
		}
	}
	response.Total = len(response.Slots)
	return response, nil
}

func (u *availabilityUsecase) PractitionersAvailable(ctx context.Context, specialtyID uuid.UUID, date string) (*dto.PractitionersAvailabilityResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	specialty, err := u.specialtyRepo.FindByID(ctx, u.db, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty %s: %+v", specialtyID, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	practitioners, err := u.practitionerRepo.FindBySpecialty(ctx, u.db, specialtyID)
	if err != nil {
		u.log.Warnf("Failed to list practitioners for specialty %s: %+v", specialtyID, err)
		return nil, err
	}

	response := &dto.PractitionersAvailabilityResponse{
		SpecialtyID: specialtyID,
		Date:        day.Format("2006-01-02"),
		Available:   []dto.PractitionerSummary{},
		Unavailable: []dto.UnavailablePractitioner{},
	}

	for i := range practitioners {
		practitioner := &practitioners[i]
		summary := *converter.PractitionerToSummary(practitioner)

		unavailable, reason, err := u.leaves.CheckPractitioner(ctx, practitioner.ID, day, nil)
		if err != nil {
			return nil, err
		}
		if unavailable {
			if reason == "" {
				reason = "Availability could not be verified"
			}
			response.Unavailable = append(response.Unavailable, dto.UnavailablePractitioner{
				PractitionerSummary: summary,
				Reason:              reason,
			})
			continue
		}
		response.Available = append(response.Available, summary)
	}

	return response, nil
}

// daySlots generates every slot of the given blocks and classifies it. The
// precedence is past, then on_permission, then occupied, then available.
func daySlots(blocks []entity.WorkSchedule, permissions []entity.LeaveRequest, occupied map[string]bool, pastDay, sameDay bool, nowMin int) []entity.Slot {
	slots := []entity.Slot{}
	for i := range blocks {
		block := &blocks[i]
		startMin, err := entity.ClockMinutes(block.StartTime)
		if err != nil {
			continue
		}
		endMin, err := entity.ClockMinutes(block.EndTime)
		if err != nil || block.SlotMinutes <= 0 {
			continue
		}

		for m := startMin; m < endMin; m += block.SlotMinutes {
			clock := entity.FormatClock(m)
			status := entity.SlotStatusAvailable
			switch {
			case pastDay || (sameDay && m < nowMin):
				status = entity.SlotStatusPast
			case permissionBlocks(permissions, m, m+block.SlotMinutes):
				status = entity.SlotStatusOnPermission
			case occupied[clock]:
				status = entity.SlotStatusOccupied
			}
			slots = append(slots, entity.Slot{Time: clock, Status: status})
		}
	}
	return slots
}

func permissionBlocks(permissions []entity.LeaveRequest, startMin, endMin int) bool {
	for i := range permissions {
		if permissions[i].IsFullDay() || permissions[i].OverlapsClockRange(startMin, endMin) {
			return true
		}
	}
	return false
}

func leaveOnDate(requests []entity.LeaveRequest, date time.Time) []entity.LeaveRequest {
	var matched []entity.LeaveRequest
	for _, request := range requests {
		if request.CoversDate(date) {
			matched = append(matched, request)
		}
	}
	return matched
}

func occupiedIndex(appointments []entity.Appointment) map[string]map[string]bool {
	index := make(map[string]map[string]bool)
	for i := range appointments {
		date := appointments[i].Date.Format("2006-01-02")
		clock, err := entity.NormalizeClock(appointments[i].Time)
		if err != nil {
			continue
		}
		if index[date] == nil {
			index[date] = make(map[string]bool)
		}
		index[date][clock] = true
	}
	return index
}

// periodLabel renders "January 2026" for a week inside one month and
// "January - February 2026" when the week straddles a month boundary.
func periodLabel(weekStart, weekEnd time.Time) string {
	if weekStart.Month() == weekEnd.Month() {
		return fmt.Sprintf("%s %d", weekStart.Month(), weekStart.Year())
	}
	return fmt.Sprintf("%s - %s %d", weekStart.Month(), weekEnd.Month(), weekStart.Year())
}
