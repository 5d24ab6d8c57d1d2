package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkSchedule is one recurring weekly attendance block for a practitioner.
// Weekday follows the clinic convention 0=Monday .. 6=Sunday. A practitioner
// may hold several blocks on the same weekday (morning and afternoon shifts);
// slot generation unions them.
type WorkSchedule struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PractitionerID uuid.UUID `gorm:"type:uuid;not null;index" json:"practitioner_id"`
	Weekday        int       `gorm:"not null;check:weekday >= 0 AND weekday <= 6" json:"weekday"`
	StartTime      string    `gorm:"type:time;not null" json:"start_time"`
	EndTime        string    `gorm:"type:time;not null" json:"end_time"`
	SlotMinutes    int       `gorm:"not null;default:30" json:"slot_minutes"`
	Active         bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Practitioner Practitioner `gorm:"foreignKey:PractitionerID" json:"practitioner,omitempty"`
}

func (WorkSchedule) TableName() string {
	return "work_schedules"
}

// SlotTimes walks from StartTime to EndTime in SlotMinutes steps, stopping
// strictly before EndTime, so a 08:00-12:00 block with 30-minute slots yields
// 08:00 through 11:30 and no trailing partial slot.
func (ws *WorkSchedule) SlotTimes() ([]string, error) {
	start, err := ClockMinutes(ws.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := ClockMinutes(ws.EndTime)
	if err != nil {
		return nil, err
	}

	var slots []string
	for m := start; m < end; m += ws.SlotMinutes {
		slots = append(slots, FormatClock(m))
	}
	return slots, nil
}

// Covers reports whether a slot starting at the given clock falls inside this
// block.
func (ws *WorkSchedule) Covers(clock string) bool {
	m, err := ClockMinutes(clock)
	if err != nil {
		return false
	}
	start, err := ClockMinutes(ws.StartTime)
	if err != nil {
		return false
	}
	end, err := ClockMinutes(ws.EndTime)
	if err != nil {
		return false
	}
	return m >= start && m < end
}
