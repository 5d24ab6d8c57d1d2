package repository

import (
	"context"
	"errors"

	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workScheduleRepository struct{}

func NewWorkScheduleRepository() domainRepo.WorkScheduleRepository {
	return &workScheduleRepository{}
}

func (r *workScheduleRepository) Create(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error {
	return db.WithContext(ctx).Create(schedule).Error
}

func (r *workScheduleRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.WorkSchedule, error) {
	var schedule entity.WorkSchedule
	err := db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *workScheduleRepository) FindActiveByPractitionerAndWeekday(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID, weekday int) ([]entity.WorkSchedule, error) {
	var schedules []entity.WorkSchedule
	err := db.WithContext(ctx).
		Where("practitioner_id = ? AND weekday = ? AND active = ?", practitionerID, weekday, true).
		Order("start_time").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *workScheduleRepository) FindActiveByPractitioner(ctx context.Context, db *gorm.DB, practitionerID uuid.UUID) ([]entity.WorkSchedule, error) {
	var schedules []entity.WorkSchedule
	err := db.WithContext(ctx).
		Where("practitioner_id = ? AND active = ?", practitionerID, true).
		Order("weekday, start_time").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *workScheduleRepository) Update(ctx context.Context, db *gorm.DB, schedule *entity.WorkSchedule) error {
	return db.WithContext(ctx).Save(schedule).Error
}

func (r *workScheduleRepository) Deactivate(ctx context.Context, db *gorm.DB, id int) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.WorkSchedule{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	return result.RowsAffected, result.Error
}
