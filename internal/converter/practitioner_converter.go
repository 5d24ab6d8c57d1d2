package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

func PractitionerToSummary(practitioner *entity.Practitioner) *dto.PractitionerSummary {
	return &dto.PractitionerSummary{
		ID:                 practitioner.ID,
		FullName:           practitioner.FullName,
		RegistrationNumber: practitioner.RegistrationNumber,
	}
}
