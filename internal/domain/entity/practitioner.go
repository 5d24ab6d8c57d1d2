package entity

import (
	"time"

	"github.com/google/uuid"
)

// Practitioner is the clinical role referenced by appointments and work
// schedules. Leave records are keyed by the underlying user account, not the
// practitioner row, so the UserID link matters to the leave registry.
type Practitioner struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID             *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	FullName           string     `gorm:"type:varchar(150);not null" json:"full_name"`
	RegistrationNumber string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"registration_number"`
	Active             bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User        *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Specialties []Specialty    `gorm:"many2many:practitioner_specialties" json:"specialties,omitempty"`
	Schedules   []WorkSchedule `gorm:"foreignKey:PractitionerID" json:"schedules,omitempty"`
}

func (Practitioner) TableName() string {
	return "practitioners"
}
