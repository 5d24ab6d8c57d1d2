package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RequestVacationRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	StartDate string    `json:"start_date" validate:"required"` // Format: YYYY-MM-DD
	EndDate   string    `json:"end_date" validate:"required"`   // Format: YYYY-MM-DD
	Motive    string    `json:"motive" validate:"max=500"`
}

type RequestPermissionRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Date      string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	StartTime *string   `json:"start_time" validate:"omitempty"`
	EndTime   *string   `json:"end_time" validate:"omitempty"`
	Motive    string    `json:"motive" validate:"required,max=500"`
}

type ResolveLeaveRequest struct {
	ApproverID   uuid.UUID `json:"approver_id" validate:"required"`
	Observations string    `json:"observations" validate:"omitempty,max=500"`
}

// Response DTOs

type LeaveResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name,omitempty"`
	Kind         string     `json:"kind"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	StartTime    *string    `json:"start_time,omitempty"`
	EndTime      *string    `json:"end_time,omitempty"`
	Status       string     `json:"status"`
	Motive       string     `json:"motive,omitempty"`
	Observations string     `json:"observations,omitempty"`
	RequestedAt  time.Time  `json:"requested_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

type LeaveListResponse struct {
	Requests []LeaveResponse `json:"requests"`
	Total    int             `json:"total"`
}
