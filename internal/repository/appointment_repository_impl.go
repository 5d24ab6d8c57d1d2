package repository

import (
	"context"
	"errors"
	"time"

	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Preload("Practitioner").Preload("Patient").Preload("Specialty").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindOccupying(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, date time.Time, clock string, excludeID *uuid.UUID) (*entity.Appointment, error) {
	query := db.WithContext(ctx).
		Where("practitioner_id = ? AND date = ? AND time = ? AND status IN ?",
			practitionerID, date, clock, entity.OccupyingStatuses)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var appointment entity.Appointment
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindOccupyingBetween(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Where("practitioner_id = ? AND date >= ? AND date <= ? AND status IN ?",
			practitionerID, from, to, entity.OccupyingStatuses).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Find(ctx context.Context, db *gorm.DB, filter domainRepo.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.WithContext(ctx).
		Preload("Practitioner").Preload("Patient").Preload("Specialty")
	if filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	}
	if filter.PractitionerID != nil {
		query = query.Where("practitioner_id = ?", *filter.PractitionerID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var appointments []entity.Appointment
	err := query.Order("date, time").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindPendingOn(ctx context.Context, db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.WithContext(ctx).
		Preload("Practitioner").Preload("Patient").
		Where("date = ? AND status = ?", date, entity.AppointmentStatusPending).
		Order("time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Save(appointment).Error
}
