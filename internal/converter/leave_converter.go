package converter

import (
	"github.com/google/uuid"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

func LeaveToResponse(request *entity.LeaveRequest) *dto.LeaveResponse {
	response := &dto.LeaveResponse{
		ID:           request.ID,
		UserID:       request.UserID,
		Kind:         string(request.Kind),
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		Status:       string(request.Status),
		Motive:       request.Motive,
		Observations: request.Observations,
		RequestedAt:  request.RequestedAt,
		ResolvedAt:   request.ResolvedAt,
	}

	if request.StartTime != nil {
		c := clock(*request.StartTime)
		response.StartTime = &c
	}
	if request.EndTime != nil {
		c := clock(*request.EndTime)
		response.EndTime = &c
	}
	if request.User.ID != uuid.Nil {
		response.UserName = request.User.FullName
	}

	return response
}

func LeavesToResponses(requests []entity.LeaveRequest) []dto.LeaveResponse {
	responses := make([]dto.LeaveResponse, len(requests))
	for i := range requests {
		responses[i] = *LeaveToResponse(&requests[i])
	}
	return responses
}
