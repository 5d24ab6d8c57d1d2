package handler

import (
	"errors"
	"net/http"

	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// WeeklyCalendar renders the week containing the optional ?date= anchor,
// defaulting to the current week.
func (h *AvailabilityHandler) WeeklyCalendar(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practitioner ID", nil)
		return
	}

	calendar, err := h.availabilityUsecase.WeeklyCalendar(r.Context(), practitionerID, r.URL.Query().Get("date"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPractitionerNotFound):
			response.NotFound(w, "Practitioner not found")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to build weekly calendar")
		}
		return
	}

	response.Success(w, http.StatusOK, "Weekly calendar retrieved successfully", calendar)
}

func (h *AvailabilityHandler) FreeSlots(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practitioner ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter date is required", nil)
		return
	}

	slots, err := h.availabilityUsecase.FreeSlotsForDate(r.Context(), practitionerID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPractitionerNotFound):
			response.NotFound(w, "Practitioner not found")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to list free slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Free slots retrieved successfully", slots)
}

func (h *AvailabilityHandler) PractitionersAvailable(w http.ResponseWriter, r *http.Request) {
	specialtyID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter date is required", nil)
		return
	}

	availability, err := h.availabilityUsecase.PractitionersAvailable(r.Context(), specialtyID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSpecialtyNotFound):
			response.NotFound(w, "Specialty not found")
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to check practitioner availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Practitioner availability retrieved successfully", availability)
}
