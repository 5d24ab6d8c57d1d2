package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"

	"github.com/google/uuid"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		PractitionerID: appointment.PractitionerID,
		PatientID:      appointment.PatientID,
		SpecialtyID:    appointment.SpecialtyID,
		Date:           appointment.Date.Format("2006-01-02"),
		Time:           clock(appointment.Time),
		Motive:         appointment.Motive,
		Status:         string(appointment.Status),
		Observations:   appointment.Observations,
		CreatedAt:      appointment.CreatedAt,
		ConfirmedAt:    appointment.ConfirmedAt,
	}

	if appointment.CancelledBy != nil {
		response.CancelledBy = string(*appointment.CancelledBy)
	}
	if appointment.Practitioner.ID != uuid.Nil {
		response.Practitioner = PractitionerToSummary(&appointment.Practitioner)
	}
	if appointment.Patient.ID != uuid.Nil {
		response.PatientName = appointment.Patient.FullName()
	}
	if appointment.Specialty.ID != uuid.Nil {
		response.SpecialtyName = appointment.Specialty.Name
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// clock tolerates the HH:MM:SS form Postgres time columns scan back as.
func clock(value string) string {
	normalized, err := entity.NormalizeClock(value)
	if err != nil {
		return value
	}
	return normalized
}
