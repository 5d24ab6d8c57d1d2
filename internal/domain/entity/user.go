package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity anchor for staff members. Vacations and permissions
// attach to users so the same records cover practitioners, receptionists and
// any other staff role.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	FullName  string    `gorm:"type:varchar(150);not null" json:"full_name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
