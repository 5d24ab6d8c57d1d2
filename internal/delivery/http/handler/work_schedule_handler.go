package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/response"
	"clinic-scheduler/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type WorkScheduleHandler struct {
	scheduleUsecase usecase.WorkScheduleUsecase
	validator       *validator.CustomValidator
}

func NewWorkScheduleHandler(scheduleUsecase usecase.WorkScheduleUsecase, validator *validator.CustomValidator) *WorkScheduleHandler {
	return &WorkScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *WorkScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWorkScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPractitionerNotFound):
			response.NotFound(w, "Practitioner not found")
		case errors.Is(err, usecase.ErrInvalidTimeFormat),
			errors.Is(err, usecase.ErrInvalidTimeRange),
			errors.Is(err, usecase.ErrInvalidWeekday),
			errors.Is(err, usecase.ErrInvalidSlotSize):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create work schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Work schedule created successfully", schedule)
}

func (h *WorkScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scheduleID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateWorkScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.scheduleUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrScheduleNotFound):
			response.NotFound(w, "Work schedule not found")
		case errors.Is(err, usecase.ErrInvalidTimeFormat),
			errors.Is(err, usecase.ErrInvalidTimeRange),
			errors.Is(err, usecase.ErrInvalidWeekday),
			errors.Is(err, usecase.ErrInvalidSlotSize):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update work schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Work schedule updated successfully", schedule)
}

func (h *WorkScheduleHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.scheduleID(w, r)
	if !ok {
		return
	}

	if err := h.scheduleUsecase.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrScheduleNotFound) {
			response.NotFound(w, "Work schedule not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate work schedule")
		return
	}

	response.Success(w, http.StatusOK, "Work schedule deactivated successfully", nil)
}

func (h *WorkScheduleHandler) ListByPractitioner(w http.ResponseWriter, r *http.Request) {
	practitionerID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid practitioner ID", nil)
		return
	}

	schedules, err := h.scheduleUsecase.ListByPractitioner(r.Context(), practitionerID)
	if err != nil {
		if errors.Is(err, usecase.ErrPractitionerNotFound) {
			response.NotFound(w, "Practitioner not found")
			return
		}
		response.InternalServerError(w, "Failed to list work schedules")
		return
	}

	response.Success(w, http.StatusOK, "Work schedules retrieved successfully", schedules)
}

func (h *WorkScheduleHandler) scheduleID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid work schedule ID", nil)
		return 0, false
	}
	return id, true
}
