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

type leaveRepository struct{}

func NewLeaveRepository() domainRepo.LeaveRepository {
	return &leaveRepository{}
}

func (r *leaveRepository) Create(ctx context.Context, db *gorm.DB, request *entity.LeaveRequest) error {
	return db.WithContext(ctx).Create(request).Error
}

func (r *leaveRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.LeaveRequest, error) {
	var request entity.LeaveRequest
	err := db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *leaveRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, status *entity.LeaveStatus) ([]entity.LeaveRequest, error) {
	query := db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var requests []entity.LeaveRequest
	err := query.Order("start_date DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRepository) FindApprovedVacationCovering(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) (*entity.LeaveRequest, error) {
	var request entity.LeaveRequest
	err := db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			userID, entity.LeaveKindVacation, entity.LeaveStatusApproved, date, date).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *leaveRepository) FindApprovedPermissionsOn(ctx context.Context, db *gorm.DB, userID uuid.UUID, date time.Time) ([]entity.LeaveRequest, error) {
	var requests []entity.LeaveRequest
	err := db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND status = ? AND start_date = ?",
			userID, entity.LeaveKindPermission, entity.LeaveStatusApproved, date).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRepository) FindApprovedOverlapping(ctx context.Context, db *gorm.DB, userID uuid.UUID, kind entity.LeaveKind, from, to time.Time) ([]entity.LeaveRequest, error) {
	var requests []entity.LeaveRequest
	err := db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			userID, kind, entity.LeaveStatusApproved, to, from).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *leaveRepository) Update(ctx context.Context, db *gorm.DB, request *entity.LeaveRequest) error {
	return db.WithContext(ctx).Save(request).Error
}
