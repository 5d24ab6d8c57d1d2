package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

func WorkScheduleToResponse(schedule *entity.WorkSchedule) *dto.WorkScheduleResponse {
	return &dto.WorkScheduleResponse{
		ID:             schedule.ID,
		PractitionerID: schedule.PractitionerID,
		Weekday:        schedule.Weekday,
		StartTime:      clock(schedule.StartTime),
		EndTime:        clock(schedule.EndTime),
		SlotMinutes:    schedule.SlotMinutes,
		Active:         schedule.Active,
		CreatedAt:      schedule.CreatedAt,
		UpdatedAt:      schedule.UpdatedAt,
	}
}

func WorkSchedulesToResponses(schedules []entity.WorkSchedule) []dto.WorkScheduleResponse {
	responses := make([]dto.WorkScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *WorkScheduleToResponse(&schedules[i])
	}
	return responses
}
