package repository

import (
	"context"

	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PractitionerRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Practitioner, error)
	// FindBySpecialty returns active practitioners offering the specialty.
	FindBySpecialty(ctx context.Context, db *gorm.DB, specialtyID uuid.UUID) ([]entity.Practitioner, error)
}

type PatientRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
}

type SpecialtyRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Specialty, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
}
