package handler

import (
	"context"
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

type LeaveHandler struct {
	leaveUsecase usecase.LeaveUsecase
	validator    *validator.CustomValidator
}

func NewLeaveHandler(leaveUsecase usecase.LeaveUsecase, validator *validator.CustomValidator) *LeaveHandler {
	return &LeaveHandler{
		leaveUsecase: leaveUsecase,
		validator:    validator,
	}
}

func (h *LeaveHandler) RequestVacation(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.leaveUsecase.RequestVacation(r.Context(), &req)
	if err != nil {
		h.writeRequestError(w, err, "Failed to create vacation request")
		return
	}

	response.Success(w, http.StatusCreated, "Vacation request created successfully", request)
}

func (h *LeaveHandler) RequestPermission(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := h.leaveUsecase.RequestPermission(r.Context(), &req)
	if err != nil {
		h.writeRequestError(w, err, "Failed to create permission request")
		return
	}

	response.Success(w, http.StatusCreated, "Permission request created successfully", request)
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.leaveUsecase.Approve, "Leave request approved successfully")
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.leaveUsecase.Reject, "Leave request rejected successfully")
}

func (h *LeaveHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	requests, err := h.leaveUsecase.ListByUser(r.Context(), userID, r.URL.Query().Get("status"))
	if err != nil {
		response.InternalServerError(w, "Failed to list leave requests")
		return
	}

	response.Success(w, http.StatusOK, "Leave requests retrieved successfully", requests)
}

func (h *LeaveHandler) resolve(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID, req *dto.ResolveLeaveRequest) (*dto.LeaveResponse, error), message string) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid leave request ID", nil)
		return
	}

	var req dto.ResolveLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	request, err := fn(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLeaveNotFound):
			response.NotFound(w, "Leave request not found")
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "Approver not found")
		case errors.Is(err, usecase.ErrLeaveAlreadyResolved):
			response.Conflict(w, "Leave request is already resolved")
		default:
			response.InternalServerError(w, "Failed to resolve leave request")
		}
		return
	}

	response.Success(w, http.StatusOK, message, request)
}

func (h *LeaveHandler) writeRequestError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, usecase.ErrInvalidDateFormat),
		errors.Is(err, usecase.ErrInvalidTimeFormat),
		errors.Is(err, usecase.ErrInvalidTimeRange),
		errors.Is(err, usecase.ErrInvalidLeaveRange),
		errors.Is(err, usecase.ErrPermissionTimeRange):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
