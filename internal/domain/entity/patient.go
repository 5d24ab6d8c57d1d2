package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is reference data owned by the patient-records module; the engine
// reads it only to validate bookings.
type Patient struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName      string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(100);not null" json:"last_name"`
	DocumentNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"document_number"`
	Phone          string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email          string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Active         bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
