package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/response"
	"clinic-scheduler/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewAppointmentHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.Book(r.Context(), &req)
	if err != nil {
		var unavailable *usecase.UnavailabilityError
		switch {
		case errors.As(err, &unavailable):
			response.UnprocessableEntity(w, unavailable.Error())
		case errors.Is(err, usecase.ErrSlotTaken):
			response.Conflict(w, "Slot is already taken for this practitioner")
		case errors.Is(err, usecase.ErrPractitionerBusy):
			response.Conflict(w, "Practitioner is being booked by another request, please retry")
		case errors.Is(err, usecase.ErrPractitionerNotFound):
			response.NotFound(w, "Practitioner not found")
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.Is(err, usecase.ErrSpecialtyNotFound):
			response.NotFound(w, "Specialty not found")
		case errors.Is(err, usecase.ErrPractitionerInactive):
			response.Error(w, http.StatusBadRequest, "Practitioner is not active", nil)
		case errors.Is(err, usecase.ErrPatientInactive):
			response.Error(w, http.StatusBadRequest, "Patient is not active", nil)
		case errors.Is(err, usecase.ErrPastDate):
			response.Error(w, http.StatusBadRequest, "Date must not be in the past", nil)
		case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.bookingUsecase.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	appointments, err := h.bookingUsecase.List(r.Context(), query.Get("date"), query.Get("practitioner_id"), query.Get("status"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrPractitionerNotFound):
			response.Error(w, http.StatusBadRequest, "Invalid practitioner ID", nil)
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) ListToConfirm(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.bookingUsecase.ListToConfirm(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments to confirm")
		return
	}

	response.Success(w, http.StatusOK, "Appointments to confirm retrieved successfully", appointments)
}

func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.bookingUsecase.Confirm(r.Context(), id)
	if err != nil {
		h.writeTransitionError(w, err, "Failed to confirm appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed successfully", appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	var req dto.CancelAppointmentRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
		if err := h.validator.Validate(&req); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	appointment, err := h.bookingUsecase.Cancel(r.Context(), id, &req)
	if err != nil {
		h.writeTransitionError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	var req dto.RescheduleAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.Reschedule(r.Context(), id, &req)
	if err != nil {
		var unavailable *usecase.UnavailabilityError
		switch {
		case errors.As(err, &unavailable):
			response.UnprocessableEntity(w, unavailable.Error())
		case errors.Is(err, usecase.ErrSlotTaken):
			response.Conflict(w, "Slot is already taken for this practitioner")
		case errors.Is(err, usecase.ErrPractitionerBusy):
			response.Conflict(w, "Practitioner is being booked by another request, please retry")
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidTransition):
			response.Conflict(w, "Appointment status does not allow rescheduling")
		case errors.Is(err, usecase.ErrPastDate):
			response.Error(w, http.StatusBadRequest, "Date must not be in the past", nil)
		case errors.Is(err, usecase.ErrInvalidDateFormat), errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to reschedule appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment rescheduled successfully", appointment)
}

func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.bookingUsecase.Complete(r.Context(), id)
	if err != nil {
		h.writeTransitionError(w, err, "Failed to complete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed successfully", appointment)
}

func (h *AppointmentHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.bookingUsecase.MarkNoShow(r.Context(), id)
	if err != nil {
		h.writeTransitionError(w, err, "Failed to mark appointment as no-show")
		return
	}

	response.Success(w, http.StatusOK, "Appointment marked as no-show", appointment)
}

func (h *AppointmentHandler) MarkContacted(w http.ResponseWriter, r *http.Request) {
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	var req dto.ContactNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.MarkContacted(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to record contact note")
		return
	}

	response.Success(w, http.StatusOK, "Contact note recorded successfully", appointment)
}

func (h *AppointmentHandler) appointmentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *AppointmentHandler) writeTransitionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrInvalidTransition):
		response.Conflict(w, "Appointment status does not allow this operation")
	default:
		response.InternalServerError(w, fallback)
	}
}
