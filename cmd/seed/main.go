// Command seed fills the database with demo data for local development.
package main

import (
	"fmt"

	"clinic-scheduler/config"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/infrastructure/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := database.RunMigrations(cfg.DB, "migrations"); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed(db); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}

	logrus.Info("Database seeded successfully")
}

func seed(db *gorm.DB) error {
	gofakeit.Seed(42)

	return db.Transaction(func(tx *gorm.DB) error {
		specialties := make([]entity.Specialty, 0, len(specialtyNames))
		for _, name := range specialtyNames {
			specialties = append(specialties, entity.Specialty{
				Name:        name,
				Description: gofakeit.Sentence(8),
				Active:      true,
			})
		}
		if err := tx.Create(&specialties).Error; err != nil {
			return err
		}

		for i := 0; i < 8; i++ {
			user := entity.User{
				Username: gofakeit.Username(),
				FullName: gofakeit.Name(),
				Email:    gofakeit.Email(),
				Active:   true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			practitioner := entity.Practitioner{
				UserID:             &user.ID,
				FullName:           user.FullName,
				RegistrationNumber: fmt.Sprintf("REG-%05d", gofakeit.Number(10000, 99999)),
				Active:             true,
				Specialties:        []entity.Specialty{specialties[i%len(specialties)]},
			}
			if err := tx.Create(&practitioner).Error; err != nil {
				return err
			}

			// Weekday morning shift plus a shorter afternoon block.
			schedules := []entity.WorkSchedule{
				{
					PractitionerID: practitioner.ID,
					Weekday:        i % 5,
					StartTime:      "08:00",
					EndTime:        "12:00",
					SlotMinutes:    30,
					Active:         true,
				},
				{
					PractitionerID: practitioner.ID,
					Weekday:        (i + 1) % 5,
					StartTime:      "14:00",
					EndTime:        "17:00",
					SlotMinutes:    30,
					Active:         true,
				},
			}
			if err := tx.Create(&schedules).Error; err != nil {
				return err
			}
		}

		patients := make([]entity.Patient, 0, 30)
		for i := 0; i < 30; i++ {
			patients = append(patients, entity.Patient{
				FirstName:      gofakeit.FirstName(),
				LastName:       gofakeit.LastName(),
				DocumentNumber: fmt.Sprintf("DOC-%08d", gofakeit.Number(10000000, 99999999)),
				Phone:          gofakeit.Phone(),
				Email:          gofakeit.Email(),
				Active:         true,
			})
		}
		return tx.Create(&patients).Error
	})
}

var specialtyNames = []string{
	"General Medicine",
	"Pediatrics",
	"Dermatology",
	"Cardiology",
	"Traumatology",
	"Odontology",
}
