package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeaveKind discriminates the two shapes of staff leave.
type LeaveKind string

const (
	LeaveKindVacation   LeaveKind = "vacation"
	LeaveKindPermission LeaveKind = "permission"
)

// LeaveStatus is the approval state of a leave request. Only approved leave
// removes availability; pending and rejected requests are informational.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest unifies vacations (inclusive date range) and permissions
// (single day, optional time range) under one row. Requests are keyed by the
// staff user, not the practitioner row, so leave applies to the person across
// any clinical role.
type LeaveRequest struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind         LeaveKind   `gorm:"type:leave_kind;not null" json:"kind"`
	StartDate    time.Time   `gorm:"type:date;not null;index" json:"start_date"`
	EndDate      time.Time   `gorm:"type:date;not null" json:"end_date"`
	StartTime    *string     `gorm:"type:time" json:"start_time,omitempty"`
	EndTime      *string     `gorm:"type:time" json:"end_time,omitempty"`
	Status       LeaveStatus `gorm:"type:leave_status;not null;default:'pending';index" json:"status"`
	Motive       string      `gorm:"type:text" json:"motive,omitempty"`
	Observations string      `gorm:"type:text" json:"observations,omitempty"`
	RequestedAt  time.Time   `gorm:"autoCreateTime" json:"requested_at"`
	ApprovedByID *uuid.UUID  `gorm:"type:uuid" json:"approved_by_id,omitempty"`
	ResolvedAt   *time.Time  `json:"resolved_at,omitempty"`

	// Relationships
	User       User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ApprovedBy *User `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (l *LeaveRequest) IsApproved() bool {
	return l.Status == LeaveStatusApproved
}

func (l *LeaveRequest) IsPending() bool {
	return l.Status == LeaveStatusPending
}

// CoversDate reports whether the leave spans the given calendar day. Both
// endpoints are inclusive; permissions carry StartDate == EndDate.
func (l *LeaveRequest) CoversDate(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(l.StartDate)) && !d.After(DateOnly(l.EndDate))
}

// IsFullDay reports whether a permission blocks the whole day. A permission
// with either endpoint missing counts as full-day.
func (l *LeaveRequest) IsFullDay() bool {
	return l.StartTime == nil || l.EndTime == nil
}

// OverlapsClockRange applies the strict overlap rule between the permission's
// time range and [startMin, endMin). Full-day permissions overlap everything.
func (l *LeaveRequest) OverlapsClockRange(startMin, endMin int) bool {
	if l.IsFullDay() {
		return true
	}
	pStart, err := ClockMinutes(*l.StartTime)
	if err != nil {
		return true
	}
	pEnd, err := ClockMinutes(*l.EndTime)
	if err != nil {
		return true
	}
	return ClockRangesOverlap(pStart, pEnd, startMin, endMin)
}
