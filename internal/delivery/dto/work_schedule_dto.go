package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateWorkScheduleRequest struct {
	PractitionerID uuid.UUID `json:"practitioner_id" validate:"required"`
	Weekday        int       `json:"weekday" validate:"min=0,max=6"` // 0=Monday .. 6=Sunday
	StartTime      string    `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime        string    `json:"end_time" validate:"required"`   // Format: HH:MM
	SlotMinutes    int       `json:"slot_minutes" validate:"omitempty,min=1"`
}

type UpdateWorkScheduleRequest struct {
	Weekday     *int    `json:"weekday" validate:"omitempty,min=0,max=6"`
	StartTime   *string `json:"start_time" validate:"omitempty"` // Format: HH:MM
	EndTime     *string `json:"end_time" validate:"omitempty"`   // Format: HH:MM
	SlotMinutes *int    `json:"slot_minutes" validate:"omitempty,min=1"`
	Active      *bool   `json:"active" validate:"omitempty"`
}

// Response DTOs

type WorkScheduleResponse struct {
	ID             int       `json:"id"`
	PractitionerID uuid.UUID `json:"practitioner_id"`
	Weekday        int       `json:"weekday"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	SlotMinutes    int       `json:"slot_minutes"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type WorkScheduleListResponse struct {
	Schedules []WorkScheduleResponse `json:"schedules"`
	Total     int                    `json:"total"`
}
